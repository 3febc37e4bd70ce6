/*
File    : golox/internal/ast/ast.go
Package : ast

Package ast defines the Lox syntax tree. Nodes are plain tagged-union
structs dispatched on by type switch, not an Accept/Visit hierarchy:
the resolver, the evaluator, and the debug printer each walk the tree
with their own type switch over Expr/Stmt, which keeps tree-shape
concerns (parser, ast) separate from per-consumer behavior (resolver,
interp, printer).

Every Expr carries a stable integer ID, assigned once at construction
time by NewID. The resolver uses a node's ID as the key into its
scope-distance side table; since Go structs holding a slice/map field
aren't comparable and nodes are mutated nowhere after parsing, an
explicit ID is simpler and cheaper than address-based identity.
*/
package ast

import "github.com/akashmaji946/golox/internal/token"

var nextID int

// NewID returns a fresh node identifier, unique within a single parse.
func NewID() int {
	nextID++
	return nextID
}

// Expr is any Lox expression node.
type Expr interface {
	exprNode()
	ID() int
}

// Stmt is any Lox statement node.
type Stmt interface {
	stmtNode()
}

// base carries the per-node identity shared by every Expr.
type base struct {
	id int
}

func (b base) ID() int { return b.id }

// BinaryExpr is "left OP right" for the arithmetic, comparison, and
// equality operators.
type BinaryExpr struct {
	base
	Left     Expr
	Operator token.Token
	Right    Expr
}

func NewBinary(left Expr, operator token.Token, right Expr) *BinaryExpr {
	return &BinaryExpr{base: base{NewID()}, Left: left, Operator: operator, Right: right}
}
func (*BinaryExpr) exprNode() {}

// LogicalExpr is "left (and|or) right". It is kept distinct from
// BinaryExpr because and/or must short-circuit: the evaluator must not
// evaluate Right unless Left's truthiness requires it.
type LogicalExpr struct {
	base
	Left     Expr
	Operator token.Token
	Right    Expr
}

func NewLogical(left Expr, operator token.Token, right Expr) *LogicalExpr {
	return &LogicalExpr{base: base{NewID()}, Left: left, Operator: operator, Right: right}
}
func (*LogicalExpr) exprNode() {}

// UnaryExpr is "OP right" for "!" and prefix "-".
type UnaryExpr struct {
	base
	Operator token.Token
	Right    Expr
}

func NewUnary(operator token.Token, right Expr) *UnaryExpr {
	return &UnaryExpr{base: base{NewID()}, Operator: operator, Right: right}
}
func (*UnaryExpr) exprNode() {}

// GroupingExpr is a parenthesized sub-expression, kept as its own node
// (rather than collapsed away by the parser) so a printer can round
// trip the source's explicit grouping.
type GroupingExpr struct {
	base
	Expression Expr
}

func NewGrouping(expression Expr) *GroupingExpr {
	return &GroupingExpr{base: base{NewID()}, Expression: expression}
}
func (*GroupingExpr) exprNode() {}

// LiteralExpr holds a scanned literal value: float64, string, bool, or
// nil. It never depends on the value package; the evaluator converts
// this raw payload into a value.Value at evaluation time.
type LiteralExpr struct {
	base
	Value interface{}
}

func NewLiteral(value interface{}) *LiteralExpr {
	return &LiteralExpr{base: base{NewID()}, Value: value}
}
func (*LiteralExpr) exprNode() {}

// VariableExpr reads the value bound to Name.
type VariableExpr struct {
	base
	Name token.Token
}

func NewVariable(name token.Token) *VariableExpr {
	return &VariableExpr{base: base{NewID()}, Name: name}
}
func (*VariableExpr) exprNode() {}

// AssignExpr is "Name = Value".
type AssignExpr struct {
	base
	Name  token.Token
	Value Expr
}

func NewAssign(name token.Token, value Expr) *AssignExpr {
	return &AssignExpr{base: base{NewID()}, Name: name, Value: value}
}
func (*AssignExpr) exprNode() {}

// CallExpr is "Callee(Arguments...)". Paren is the closing ")" token,
// kept so runtime errors (wrong arity, not callable) can report a
// source line even though Callee may span multiple lines.
type CallExpr struct {
	base
	Callee    Expr
	Paren     token.Token
	Arguments []Expr
}

func NewCall(callee Expr, paren token.Token, arguments []Expr) *CallExpr {
	return &CallExpr{base: base{NewID()}, Callee: callee, Paren: paren, Arguments: arguments}
}
func (*CallExpr) exprNode() {}

// GetExpr is "Object.Name", a property or method read.
type GetExpr struct {
	base
	Object Expr
	Name   token.Token
}

func NewGet(object Expr, name token.Token) *GetExpr {
	return &GetExpr{base: base{NewID()}, Object: object, Name: name}
}
func (*GetExpr) exprNode() {}

// SetExpr is "Object.Name = Value", a property write.
type SetExpr struct {
	base
	Object Expr
	Name   token.Token
	Value  Expr
}

func NewSet(object Expr, name token.Token, value Expr) *SetExpr {
	return &SetExpr{base: base{NewID()}, Object: object, Name: name, Value: value}
}
func (*SetExpr) exprNode() {}

// ThisExpr is the "this" keyword, resolved like any other variable
// reference against the implicit scope a method body is nested in.
type ThisExpr struct {
	base
	Keyword token.Token
}

func NewThis(keyword token.Token) *ThisExpr {
	return &ThisExpr{base: base{NewID()}, Keyword: keyword}
}
func (*ThisExpr) exprNode() {}

// SuperExpr is "super.Method", an explicit superclass method lookup.
type SuperExpr struct {
	base
	Keyword token.Token
	Method  token.Token
}

func NewSuper(keyword, method token.Token) *SuperExpr {
	return &SuperExpr{base: base{NewID()}, Keyword: keyword, Method: method}
}
func (*SuperExpr) exprNode() {}

// ExpressionStmt evaluates Expression and discards its value.
type ExpressionStmt struct {
	Expression Expr
}

func (*ExpressionStmt) stmtNode() {}

// PrintStmt evaluates Expression and writes its string form followed
// by a newline.
type PrintStmt struct {
	Expression Expr
}

func (*PrintStmt) stmtNode() {}

// VarStmt declares Name in the current scope, optionally initialized
// by Initializer (nil means "initialize to nil").
type VarStmt struct {
	Name        token.Token
	Initializer Expr
}

func (*VarStmt) stmtNode() {}

// BlockStmt introduces a new lexical scope around Statements.
type BlockStmt struct {
	Statements []Stmt
}

func (*BlockStmt) stmtNode() {}

// IfStmt is "if (Condition) Then [else Else]". Else is nil when the
// statement has no else clause.
type IfStmt struct {
	Condition Expr
	Then      Stmt
	Else      Stmt
}

func (*IfStmt) stmtNode() {}

// WhileStmt is "while (Condition) Body". The parser also desugars
// for-loops down to a WhileStmt wrapped in a BlockStmt, so the
// resolver and evaluator need no separate for-loop case.
type WhileStmt struct {
	Condition Expr
	Body      Stmt
}

func (*WhileStmt) stmtNode() {}

// FunctionStmt is a named function or method declaration.
type FunctionStmt struct {
	Name   token.Token
	Params []token.Token
	Body   []Stmt
}

func (*FunctionStmt) stmtNode() {}

// ReturnStmt is "return [Value];". Value is nil for a bare return.
type ReturnStmt struct {
	Keyword token.Token
	Value   Expr
}

func (*ReturnStmt) stmtNode() {}

// ClassStmt is a class declaration. Superclass is nil when the class
// has no "< Superclass" clause.
type ClassStmt struct {
	Name       token.Token
	Superclass *VariableExpr
	Methods    []*FunctionStmt
}

func (*ClassStmt) stmtNode() {}

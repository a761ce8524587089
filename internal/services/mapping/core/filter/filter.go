// Package filter parses position search queries into SQL predicates.
//
// A query is either an AIP-160 filter expression over the declared
// identifiers `name` and `value` (for example `name = "core_latitude" AND
// value = "45"`), or plain free text matched as a substring of any property
// value. The resulting predicate applies to one property row; the store
// wraps it in an EXISTS over the position's properties.
package filter

import (
	"fmt"
	"strings"

	apperrors "github.com/simplemapping/simplemapping/internal/errors"
	"github.com/simplemapping/simplemapping/internal/services/mapping/storage"
	"go.einride.tech/aip/filtering"
	expr "google.golang.org/genproto/googleapis/api/expr/v1alpha1"
)

// Declarations returns the identifier declarations for position searches.
func Declarations() (*filtering.Declarations, error) {
	return filtering.NewDeclarations(
		filtering.DeclareStandardFunctions(),
		filtering.DeclareIdent("name", filtering.TypeString),
		filtering.DeclareIdent("value", filtering.TypeString),
	)
}

// columnMapping maps filter identifiers to property-row SQL columns.
var columnMapping = map[string]string{
	"name":  "name",
	"value": "value",
}

// ParsePositionQuery translates a search query into a property predicate.
// An empty query returns the zero filter, which matches every position.
// Queries that do not parse as a filter expression fall back to free-text
// substring matching over property values.
func ParsePositionQuery(query string) (storage.PositionFilter, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return storage.PositionFilter{}, nil
	}

	decls, err := Declarations()
	if err != nil {
		return storage.PositionFilter{}, fmt.Errorf("create declarations: %w", err)
	}

	parsed, err := filtering.ParseFilterString(query, decls)
	if err != nil {
		return freeTextFilter(query), nil
	}
	root := parsed.CheckedExpr.GetExpr()
	if root.GetCallExpr() == nil {
		// A bare term type-checks as an identifier; treat it as text.
		return freeTextFilter(query), nil
	}

	condition, err := translateExpr(root)
	if err != nil {
		return storage.PositionFilter{}, apperrors.Wrap(
			apperrors.CodeSearchInvalidQuery,
			"search query could not be translated",
			err,
		)
	}
	return condition, nil
}

func freeTextFilter(text string) storage.PositionFilter {
	return storage.PositionFilter{
		Clause: `value LIKE ? ESCAPE '\'`,
		Params: []any{"%" + escapeLike(text) + "%"},
	}
}

func escapeLike(value string) string {
	replacer := strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)
	return replacer.Replace(value)
}

// translateExpr translates a CEL expression to a SQL condition.
func translateExpr(e *expr.Expr) (storage.PositionFilter, error) {
	if e == nil {
		return storage.PositionFilter{}, nil
	}

	switch kind := e.ExprKind.(type) {
	case *expr.Expr_CallExpr:
		return translateCall(kind.CallExpr)
	default:
		return storage.PositionFilter{}, fmt.Errorf("unsupported expression type: %T", kind)
	}
}

// translateCall translates a CEL function call to a SQL condition.
func translateCall(call *expr.Expr_Call) (storage.PositionFilter, error) {
	switch call.Function {
	case "_&&_", "AND":
		return translateBinary(call.Args, "AND")
	case "_||_", "OR":
		return translateBinary(call.Args, "OR")
	case "_==_", "=":
		return translateComparison(call.Args, "=")
	case "_!=_", "!=":
		return translateComparison(call.Args, "!=")
	case "_<_", "<":
		return translateComparison(call.Args, "<")
	case "_<=_", "<=":
		return translateComparison(call.Args, "<=")
	case "_>_", ">":
		return translateComparison(call.Args, ">")
	case "_>=_", ">=":
		return translateComparison(call.Args, ">=")
	default:
		return storage.PositionFilter{}, fmt.Errorf("unsupported function: %s", call.Function)
	}
}

func translateBinary(args []*expr.Expr, op string) (storage.PositionFilter, error) {
	if len(args) != 2 {
		return storage.PositionFilter{}, fmt.Errorf("%s requires 2 arguments", op)
	}

	left, err := translateExpr(args[0])
	if err != nil {
		return storage.PositionFilter{}, err
	}
	right, err := translateExpr(args[1])
	if err != nil {
		return storage.PositionFilter{}, err
	}

	return storage.PositionFilter{
		Clause: fmt.Sprintf("(%s %s %s)", left.Clause, op, right.Clause),
		Params: append(left.Params, right.Params...),
	}, nil
}

func translateComparison(args []*expr.Expr, op string) (storage.PositionFilter, error) {
	if len(args) != 2 {
		return storage.PositionFilter{}, fmt.Errorf("comparison requires 2 arguments")
	}

	ident, err := extractIdent(args[0])
	if err != nil {
		return storage.PositionFilter{}, err
	}
	column, ok := columnMapping[ident]
	if !ok {
		return storage.PositionFilter{}, fmt.Errorf("unknown identifier: %s", ident)
	}

	value, err := extractValue(args[1])
	if err != nil {
		return storage.PositionFilter{}, err
	}

	return storage.PositionFilter{
		Clause: fmt.Sprintf("%s %s ?", column, op),
		Params: []any{value},
	}, nil
}

func extractIdent(e *expr.Expr) (string, error) {
	if e == nil {
		return "", fmt.Errorf("nil expression")
	}

	switch kind := e.ExprKind.(type) {
	case *expr.Expr_IdentExpr:
		return kind.IdentExpr.Name, nil
	default:
		return "", fmt.Errorf("expected identifier, got %T", kind)
	}
}

func extractValue(e *expr.Expr) (any, error) {
	if e == nil {
		return nil, fmt.Errorf("nil expression")
	}

	switch kind := e.ExprKind.(type) {
	case *expr.Expr_ConstExpr:
		return extractConstValue(kind.ConstExpr)
	default:
		return nil, fmt.Errorf("expected constant, got %T", kind)
	}
}

func extractConstValue(c *expr.Constant) (any, error) {
	if c == nil {
		return nil, fmt.Errorf("nil constant")
	}

	switch kind := c.ConstantKind.(type) {
	case *expr.Constant_StringValue:
		return kind.StringValue, nil
	case *expr.Constant_Int64Value:
		return kind.Int64Value, nil
	case *expr.Constant_DoubleValue:
		return kind.DoubleValue, nil
	default:
		return nil, fmt.Errorf("unsupported constant type: %T", kind)
	}
}

package syntax

import "fmt"

// Category is the display class assigned to a classified span.
type Category uint8

const (
	CategoryNone Category = iota
	CategoryBuiltinType
	CategoryCareful
	CategoryAttribute
	CategoryDeclaration
	CategoryPreprocessor
	CategoryOperator
	CategorySeparator
	CategoryDelimiter
	CategoryNumericLiteral
	CategoryFunctionName
	CategoryTypeName
	CategoryKeyword
	CategoryCharLiteral
	CategoryCallReference
	CategoryParameter
	CategoryTupleReference
	CategoryVariableReference
	CategoryComment
	CategoryString
)

var categoryNames = [...]string{
	CategoryNone:              "none",
	CategoryBuiltinType:       "builtin_type",
	CategoryCareful:           "careful",
	CategoryAttribute:         "attribute",
	CategoryDeclaration:       "declaration",
	CategoryPreprocessor:      "preprocessor",
	CategoryOperator:          "operator",
	CategorySeparator:         "separator",
	CategoryDelimiter:         "delimiter",
	CategoryNumericLiteral:    "numeric_literal",
	CategoryFunctionName:      "function_name",
	CategoryTypeName:          "type_name",
	CategoryKeyword:           "keyword",
	CategoryCharLiteral:       "char_literal",
	CategoryCallReference:     "call_reference",
	CategoryParameter:         "parameter",
	CategoryTupleReference:    "tuple_reference",
	CategoryVariableReference: "variable_reference",
	CategoryComment:           "comment",
	CategoryString:            "string",
}

func (c Category) String() string {
	if int(c) < len(categoryNames) {
		return categoryNames[c]
	}
	return fmt.Sprintf("Category(%d)", uint8(c))
}

// ParseCategory maps the stable name of a category (as printed by String and
// as written in configuration files) back to its value.
func ParseCategory(name string) (Category, error) {
	for i, n := range categoryNames {
		if n == name {
			return Category(i), nil
		}
	}
	return CategoryNone, &ConfigError{Reason: fmt.Sprintf("unknown category %q", name)}
}

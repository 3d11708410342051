package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidEntityID   = errors.New("invalid entity id")
	ErrReservedField     = errors.New("field name is reserved")
	ErrEmptyFieldName    = errors.New("field name cannot be empty")
	ErrUnencodableValue  = errors.New("field value cannot be encoded as JSON")
	ErrIntegerOutOfRange = errors.New("integer field value exceeds the int64 range")
	ErrUnknownOperator   = errors.New("unknown query operator")
	ErrInvalidOperand    = errors.New("invalid operand for query operator")
	ErrInvalidPagination = errors.New("skip and limit cannot be negative")
	ErrEmptySortField    = errors.New("sort field cannot be empty")
)

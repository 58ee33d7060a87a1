package gomerr

type BadValueType string

const (
	InvalidValueType   BadValueType = "Invalid"
	MalformedValueType BadValueType = "Malformed"

	DefaultReasonAttributeKey = "Reason"
	DefaultValidAttributeKey  = "Valid"
)

type BadValueError struct {
	Gomerr
	Type  BadValueType
	Name  string
	Value any
}

func InvalidValue(name string, value any, valid any) *BadValueError {
	return Build(new(BadValueError), InvalidValueType, name, value).AddAttribute(DefaultValidAttributeKey, valid).(*BadValueError)
}

func MalformedValue(name string, value any) *BadValueError {
	return Build(new(BadValueError), MalformedValueType, name, value).(*BadValueError)
}

func (bve *BadValueError) WithReason(reason string) *BadValueError {
	bve.AddAttribute(DefaultReasonAttributeKey, reason)
	return bve
}

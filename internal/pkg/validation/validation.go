package validation

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"
)

var ErrValidation = errors.New("validation failed")

const (
	MsgRequired = "must not be blank"
	MsgNotNull  = "must not be null"
	MsgEmail    = "must be a well-formed email address"
	MsgInvalid  = "must be one of the allowed values"
)

// Error ошибка валидации с причиной по каждому полю. errors.Is(err, ErrValidation) == true.
type Error struct {
	Fields map[string]string
}

func (e *Error) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, e.Fields[k]))
	}
	return fmt.Sprintf("%s: %s", ErrValidation.Error(), strings.Join(parts, "; "))
}

func (e *Error) Unwrap() error {
	return ErrValidation
}

// Collector собирает ошибки по полям, для поля сохраняется первая причина.
type Collector struct {
	fields map[string]string
}

func NewCollector() *Collector {
	return &Collector{fields: make(map[string]string)}
}

func (c *Collector) Add(field, msg string) {
	if _, ok := c.fields[field]; ok {
		return
	}
	c.fields[field] = msg
}

func (c *Collector) Has(field string) bool {
	_, ok := c.fields[field]
	return ok
}

func (c *Collector) Err() error {
	if len(c.fields) == 0 {
		return nil
	}
	return &Error{Fields: c.fields}
}

// RequiredString проверяет, что строка задана и не пустая после trim, и укладывается в max символов.
// Возвращает обрезанное значение.
func (c *Collector) RequiredString(field string, value *string, max int) string {
	if value == nil || strings.TrimSpace(*value) == "" {
		c.Add(field, MsgRequired)
		return ""
	}
	trimmed := strings.TrimSpace(*value)
	if utf8.RuneCountInString(trimmed) > max {
		c.Add(field, MaxLengthMsg(max))
	}
	return trimmed
}

// OptionalString обрезает значение, пустую строку превращает в nil.
func (c *Collector) OptionalString(field string, value *string, max int) *string {
	trimmed := Normalize(value)
	if trimmed != nil && utf8.RuneCountInString(*trimmed) > max {
		c.Add(field, MaxLengthMsg(max))
	}
	return trimmed
}

func MaxLengthMsg(max int) string {
	return fmt.Sprintf("size must be between 0 and %d", max)
}

func MinMsg(min int) string {
	return fmt.Sprintf("must be greater than or equal to %d", min)
}

func Normalize(value *string) *string {
	if value == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

// Fields достаёт причины по полям из ошибки, если это ошибка валидации.
func Fields(err error) (map[string]string, bool) {
	var vErr *Error
	if errors.As(err, &vErr) {
		return vErr.Fields, true
	}
	return nil, false
}

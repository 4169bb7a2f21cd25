// Package validation enforces field-level payload rules before any entity
// reaches storage: string lengths, integer ranges, enum membership, and
// decimal precision/scale. It is independent of the storage engine and is
// shared by the create and partial-update paths.
//
// Create payloads are plain structs checked with go-playground/validator
// struct tags; decimal columns and tri-state update fields are checked with
// the rule helpers in this package, since validator cannot introspect
// shopspring decimals or Optional fields. All violations for one payload
// are collected and returned together as a single *Errors value.
package validation

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/bakehouse/go-recipe-backend/internal/domain"
)

// FieldError describes one violated rule on one payload field.
type FieldError struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

// Errors is the structured validation failure returned to callers. It
// implements error and lists every offending field, so a client can fix a
// payload in one round trip.
type Errors struct {
	Fields []FieldError `json:"fields"`
}

// Error implements the error interface.
func (e *Errors) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = f.Field + ": " + f.Message
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Collector accumulates field errors across tag-based and manual checks.
// The zero value is ready to use.
type Collector struct {
	errs Errors
}

// Add records a violation.
func (c *Collector) Add(field, rule, message string) {
	c.errs.Fields = append(c.errs.Fields, FieldError{Field: field, Rule: rule, Message: message})
}

// Err returns the accumulated *Errors, or nil when every check passed.
func (c *Collector) Err() error {
	if len(c.errs.Fields) == 0 {
		return nil
	}
	return &c.errs
}

// vd is the shared validator instance. Field names in reported errors use
// the json tag, matching what the client actually sent.
var vd = func() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}()

// Struct runs the tag-based rules of in and records violations on c.
func (c *Collector) Struct(in any) {
	err := vd.Struct(in)
	if err == nil {
		return
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		c.Add("", "invalid", err.Error())
		return
	}
	for _, fe := range verrs {
		c.Add(fe.Field(), fe.Tag(), messageFor(fe))
	}
}

// messageFor renders a short human-readable message for a tag violation.
func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "gte":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "lte":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "oneof":
		return "must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	case "datetime":
		return "must be a date in the form " + fe.Param()
	default:
		return "failed rule " + fe.Tag()
	}
}

// DecimalRule describes the storage precision of a decimal column: the
// maximum number of fractional digits and the inclusive value bounds.
type DecimalRule struct {
	Scale int
	Min   decimal.Decimal
	Max   decimal.Decimal
}

// Column rules recovered from the relational schema. A value with more
// fractional digits than the column scale is rejected, never rounded.
var (
	// Price covers price_excluding_tax and selling_price: decimal(10,2).
	Price = DecimalRule{Scale: 2, Min: decimal.Zero, Max: decimal.RequireFromString("99999999.99")}
	// Rate covers tax_rate and discount_rate: decimal(5,4) in [0,1].
	Rate = DecimalRule{Scale: 4, Min: decimal.Zero, Max: decimal.New(1, 0)}
	// Usage covers usage_amount: decimal(10,3).
	Usage = DecimalRule{Scale: 3, Min: decimal.Zero, Max: decimal.RequireFromString("9999999.999")}
	// EggWeight covers the egg master weights: decimal(5,2).
	EggWeight = DecimalRule{Scale: 2, Min: decimal.Zero, Max: decimal.RequireFromString("999.99")}
)

// Decimal checks d against the rule and records violations on c.
func (c *Collector) Decimal(field string, d decimal.Decimal, r DecimalRule) {
	if d.Exponent() < 0 && !d.Truncate(int32(r.Scale)).Equal(d) {
		c.Add(field, "scale", fmt.Sprintf("must have at most %d decimal places", r.Scale))
		return
	}
	if d.LessThan(r.Min) {
		c.Add(field, "min", "must be at least "+r.Min.String())
	}
	if d.GreaterThan(r.Max) {
		c.Add(field, "max", "must be at most "+r.Max.String())
	}
}

// DecimalPtr checks an optional decimal when present.
func (c *Collector) DecimalPtr(field string, d *decimal.Decimal, r DecimalRule) {
	if d != nil {
		c.Decimal(field, *d, r)
	}
}

// OptString checks an Optional string field of a partial update. required
// fields reject explicit null; present values must fit maxLen and be
// non-empty when required.
func (c *Collector) OptString(field string, o domain.Optional[string], required bool, maxLen int) {
	if !o.IsSet() {
		return
	}
	if o.IsNull() {
		if required {
			c.Add(field, "required", "must not be null")
		}
		return
	}
	v, _ := o.Value()
	if required && v == "" {
		c.Add(field, "required", "must not be empty")
	}
	if len(v) > maxLen {
		c.Add(field, "max", fmt.Sprintf("must be at most %d characters", maxLen))
	}
}

// OptInt checks an Optional integer against an inclusive [min, max] range;
// max == 0 means no upper bound. nullable chooses whether an explicit null
// is allowed.
func (c *Collector) OptInt(field string, o domain.Optional[int], nullable bool, min, max int) {
	if !o.IsSet() {
		return
	}
	if o.IsNull() {
		if !nullable {
			c.Add(field, "required", "must not be null")
		}
		return
	}
	v, _ := o.Value()
	if v < min {
		c.Add(field, "gte", fmt.Sprintf("must be at least %d", min))
	}
	if max > 0 && v > max {
		c.Add(field, "lte", fmt.Sprintf("must be at most %d", max))
	}
}

// OptDecimal checks an Optional decimal when present. nullable chooses
// whether an explicit null is allowed.
func (c *Collector) OptDecimal(field string, o domain.Optional[decimal.Decimal], nullable bool, r DecimalRule) {
	if !o.IsSet() {
		return
	}
	if o.IsNull() {
		if !nullable {
			c.Add(field, "required", "must not be null")
		}
		return
	}
	v, _ := o.Value()
	c.Decimal(field, v, r)
}

// OptEnum checks an Optional enum value against a membership predicate.
func (c *Collector) OptEnum(field string, o domain.Optional[string], nullable bool, valid func(string) bool) {
	if !o.IsSet() {
		return
	}
	if o.IsNull() {
		if !nullable {
			c.Add(field, "required", "must not be null")
		}
		return
	}
	v, _ := o.Value()
	if !valid(v) {
		c.Add(field, "oneof", "is not a valid value")
	}
}

// OptDate checks an Optional ISO calendar date (yyyy-mm-dd).
func (c *Collector) OptDate(field string, o domain.Optional[string]) {
	if !o.IsSet() {
		return
	}
	if o.IsNull() {
		c.Add(field, "required", "must not be null")
		return
	}
	v, _ := o.Value()
	if err := vd.Var(v, "datetime=2006-01-02"); err != nil {
		c.Add(field, "datetime", "must be a date in the form 2006-01-02")
	}
}

// OptFK checks an Optional foreign key value: when present it must be a
// positive identifier. Existence is checked by the service layer.
func (c *Collector) OptFK(field string, o domain.Optional[uint], nullable bool) {
	if !o.IsSet() {
		return
	}
	if o.IsNull() {
		if !nullable {
			c.Add(field, "required", "must not be null")
		}
		return
	}
	v, _ := o.Value()
	if v == 0 {
		c.Add(field, "gt", "must be greater than 0")
	}
}

package models

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

// MissingJobReferencesMessage is shown when a job card lacks its machine or owner.
const MissingJobReferencesMessage = "Please select a machine and owner."

// ValidationError reports the fields that failed a form submission.
type ValidationError struct {
	Message string
	Fields  map[string]string // json field name -> failed rule
}

func (e *ValidationError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, fmt.Sprintf("%s: %s", name, e.Fields[name]))
	}
	return "invalid input: " + strings.Join(parts, ", ")
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("brand", func(fl validator.FieldLevel) bool {
		return IsValidBrand(Brand(fl.Field().String()))
	})
	_ = v.RegisterValidation("jobtype", func(fl validator.FieldLevel) bool {
		return IsValidJobType(JobType(fl.Field().String()))
	})
	_ = v.RegisterValidation("jobstatus", func(fl validator.FieldLevel) bool {
		return IsValidJobStatus(JobStatus(fl.Field().String()))
	})
	return v
}

// Validate checks an Owner, Machine or JobCard before it is written.
// Failures are returned as *ValidationError.
func Validate(entity any) error {
	err := validate.Struct(entity)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	out := &ValidationError{Fields: make(map[string]string, len(verrs))}
	for _, fe := range verrs {
		out.Fields[fieldPath(fe)] = fe.Tag()
	}
	if isJobCard(entity) {
		_, noMachine := out.Fields["machineId"]
		_, noOwner := out.Fields["ownerId"]
		if noMachine || noOwner {
			out.Message = MissingJobReferencesMessage
		}
	}
	return out
}

func isJobCard(entity any) bool {
	switch entity.(type) {
	case JobCard, *JobCard:
		return true
	}
	return false
}

// fieldPath strips the struct name from the namespace, e.g.
// "JobCard.spareParts[0].quantity" -> "spareParts[0].quantity".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

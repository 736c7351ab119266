package utils

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
)

type sampleForm struct {
	Name  string `form:"name" validate:"required,max=5"`
	Email string `form:"email_address" validate:"required,email"`
	Stock *int   `form:"stock" validate:"required,min=0"`
}

func TestFieldErrors(t *testing.T) {
	v := validator.New()
	negative := -1
	form := &sampleForm{Name: "too long", Email: "nope", Stock: &negative}

	fields, ok := FieldErrors(v.Struct(form), form)
	if !ok {
		t.Fatal("expected validation errors")
	}
	want := map[string]string{
		"name":          "Field cannot be longer than 5 characters.",
		"email_address": "Invalid email address.",
		"stock":         "Number must be at least 0.",
	}
	for k, msg := range want {
		if fields[k] != msg {
			t.Errorf("fields[%q] = %q, want %q", k, fields[k], msg)
		}
	}
}

func TestFieldErrorsRequired(t *testing.T) {
	form := &sampleForm{}
	fields, ok := FieldErrors(validator.New().Struct(form), form)
	if !ok {
		t.Fatal("expected validation errors")
	}
	for _, k := range []string{"name", "email_address", "stock"} {
		if fields[k] != RequiredMessage {
			t.Errorf("fields[%q] = %q", k, fields[k])
		}
	}
}

func TestFieldErrorsOther(t *testing.T) {
	if _, ok := FieldErrors(errors.New("unexpected EOF"), &sampleForm{}); ok {
		t.Fatal("plain errors are not validation errors")
	}
}

package application

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateNombre(t *testing.T) {
	v := &Validator{}

	assert.NoError(t, v.ValidateNombre("María José", "nombre"))
	assert.NoError(t, v.ValidateNombre("O'Connor", "nombre"))
	assert.NoError(t, v.ValidateNombre("García-López", "nombre"))

	assert.Error(t, v.ValidateNombre("", "nombre"))
	assert.Error(t, v.ValidateNombre("A", "nombre"))
	assert.Error(t, v.ValidateNombre("María123", "nombre"))
}

func TestValidateDNI(t *testing.T) {
	v := &Validator{}

	assert.NoError(t, v.ValidateDNI("12345678A"))
	assert.NoError(t, v.ValidateDNI("00000000z"))

	assert.Error(t, v.ValidateDNI(""))
	assert.Error(t, v.ValidateDNI("1234567A"))
	assert.Error(t, v.ValidateDNI("123456789"))
	assert.Error(t, v.ValidateDNI("12345678AB"))
}

func TestValidateTelefono(t *testing.T) {
	v := &Validator{}

	assert.NoError(t, v.ValidateTelefono("612345678"))
	// espacios y guiones se ignoran
	assert.NoError(t, v.ValidateTelefono("612 345 678"))
	assert.NoError(t, v.ValidateTelefono("612-345-678"))

	assert.Error(t, v.ValidateTelefono(""))
	assert.Error(t, v.ValidateTelefono("61234567"))
	assert.Error(t, v.ValidateTelefono("6123456789"))
	assert.Error(t, v.ValidateTelefono("61234567a"))
}

func TestValidateEmail(t *testing.T) {
	v := &Validator{}

	assert.NoError(t, v.ValidateEmail("maria@example.com"))
	assert.NoError(t, v.ValidateEmail("juan.perez+hotel@dominio.es"))

	assert.Error(t, v.ValidateEmail(""))
	assert.Error(t, v.ValidateEmail("sin-arroba"))
	assert.Error(t, v.ValidateEmail("a@b"))
}

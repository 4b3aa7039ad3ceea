package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/salesiana/inventory-system/pkg/jwt"
)

const (
	testSecret = "clave-de-prueba-para-tests"
	testUserID = "00000000-0000-0000-0000-000000000001"
	testIssuer = "inventory-system-test"
)

// Generar y parsear con el mismo secreto devuelve los mismos claims.
func TestGenerateParse_RoundTrip(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testUserID, "almacen", testIssuer, 60)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	userID, role, err := pkgjwt.Parse(testSecret, tok)
	require.NoError(t, err)
	assert.Equal(t, testUserID, userID)
	assert.Equal(t, "almacen", role)
}

// Un token firmado con otro secreto se rechaza.
func TestParse_SecretIncorrecto(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testUserID, "admin", testIssuer, 60)
	require.NoError(t, err)

	_, _, err = pkgjwt.Parse("otro-secreto", tok)
	assert.Error(t, err, "la firma no debe validar con otro secreto")
}

// Un token expirado se rechaza.
func TestParse_TokenExpirado(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testUserID, "admin", testIssuer, -1)
	require.NoError(t, err)

	_, _, err = pkgjwt.Parse(testSecret, tok)
	assert.Error(t, err, "un token con exp en el pasado no debe validar")
}

// Texto arbitrario no es un token.
func TestParse_TokenMalformado(t *testing.T) {
	_, _, err := pkgjwt.Parse(testSecret, "esto-no-es-un-jwt")
	assert.Error(t, err)
}

// Secret vacío: rechazado tanto al generar como al parsear.
func TestSecretVacio(t *testing.T) {
	_, err := pkgjwt.Generate("", testUserID, "admin", testIssuer, 60)
	assert.Error(t, err)

	_, _, err = pkgjwt.Parse("", "cualquier-cosa")
	assert.Error(t, err)
}

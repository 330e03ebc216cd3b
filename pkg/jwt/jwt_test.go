package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/banco-alimentos/pkg/jwt"
)

const secret = "test-secret"

func TestGenerateParse(t *testing.T) {
	id := jwt.Identity{UserID: "u-1", UserName: "Ana", Role: "bodeguero"}
	token, err := jwt.Generate(secret, "banco-alimentos", id, 5)
	require.NoError(t, err)

	got, err := jwt.Parse(secret, token)
	require.NoError(t, err)
	assert.Equal(t, id, got)
}

func TestParse_FirmaIncorrecta(t *testing.T) {
	token, err := jwt.Generate(secret, "x", jwt.Identity{UserID: "u-1"}, 5)
	require.NoError(t, err)

	_, err = jwt.Parse("otro-secreto", token)
	assert.Error(t, err)
}

func TestParse_Expirado(t *testing.T) {
	token, err := jwt.Generate(secret, "x", jwt.Identity{UserID: "u-1"}, -1)
	require.NoError(t, err)

	_, err = jwt.Parse(secret, token)
	assert.Error(t, err)
}

func TestParse_SinUsuario(t *testing.T) {
	token, err := jwt.Generate(secret, "x", jwt.Identity{UserName: "sin id"}, 5)
	require.NoError(t, err)

	_, err = jwt.Parse(secret, token)
	assert.Error(t, err)
}

func TestSecretVacio(t *testing.T) {
	_, err := jwt.Generate("", "x", jwt.Identity{UserID: "u"}, 5)
	assert.Error(t, err)
	_, err = jwt.Parse("", "abc")
	assert.Error(t, err)
}

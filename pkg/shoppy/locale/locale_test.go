package locale

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/BrandonKowalski/shoppy/pkg/shoppy/catalog"
)

func TestEnglish(t *testing.T) {
	l, err := New("en")
	require.NoError(t, err)

	assert.Equal(t, language.English, l.Tag())
	assert.Equal(t, "Grid View", l.T(GridView))
	assert.Equal(t, "List View", l.T(ListView))
	assert.Equal(t, "Filter", l.T(Filter))
	assert.Equal(t, "Shoppy", l.T(SplashTitle))
}

func TestGerman(t *testing.T) {
	l, err := New("de-DE")
	require.NoError(t, err)

	assert.Equal(t, "Rasteransicht", l.T(GridView))
	assert.Equal(t, "Zurück", l.T(Back))
}

func TestUnknownLanguageFallsBackToEnglish(t *testing.T) {
	l, err := New("fr")
	require.NoError(t, err)

	assert.Equal(t, "Retry", l.T(Retry))
}

func TestMissingMessageReturnsID(t *testing.T) {
	l, err := New("en")
	require.NoError(t, err)

	assert.Equal(t, "no_such_message", l.T("no_such_message"))
}

func TestInvalidTag(t *testing.T) {
	_, err := New("!!")
	assert.Error(t, err)
}

func TestFetchError(t *testing.T) {
	l, err := New("en")
	require.NoError(t, err)

	notFound := &catalog.FetchError{Kind: catalog.ErrNotFound, Op: "product"}
	transport := &catalog.FetchError{Kind: catalog.ErrTransport, Op: "products"}

	assert.Equal(t, "This product does not exist", l.FetchError(notFound))
	assert.Equal(t, "Could not reach the store", l.FetchError(transport))
	assert.Equal(t, "Something went wrong", l.FetchError(errors.New("other")))
}

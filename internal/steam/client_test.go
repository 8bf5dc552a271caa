package steam

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"gamesync/backend/internal/upstream"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixtureServer(t *testing.T, fixture string) *httptest.Server {
	t.Helper()
	data, err := os.ReadFile(fixture)
	require.NoError(t, err)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/appdetails", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(data)
	}))
	t.Cleanup(server.Close)
	return server
}

func TestGetAppDetails_Success(t *testing.T) {
	server := fixtureServer(t, "testdata/app_details_success.json")
	client := NewClient(server.URL+"/", "", server.Client())

	details, err := client.GetAppDetails(context.Background(), 1145360)
	require.NoError(t, err)

	assert.Equal(t, "Hades", details.Name)
	assert.Equal(t, []string{"Supergiant Games", "Private Division"}, details.Publishers)
	require.NotNil(t, details.Metacritic)
	assert.Equal(t, 93, *details.Metacritic.Score)

	p := details.Patch()
	assert.Equal(t, "Hades", *p.Name)
	assert.Equal(t, "Supergiant Games", *p.Developer)
	assert.Equal(t, "Supergiant Games", *p.Publisher)
	assert.Equal(t, "17 Sep, 2020", *p.ReleaseDate)
	assert.Equal(t, 93, *p.ReviewScore)
	assert.Contains(t, *p.Description, "Defy the god of the dead")
}

func TestGetAppDetails_SendsAppID(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "42", r.URL.Query().Get("appids"))
		_, _ = w.Write([]byte(`{"42":{"success":true,"data":{"name":"Answer"}}}`))
	}))
	defer server.Close()

	details, err := NewClient(server.URL, "", nil).GetAppDetails(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, "Answer", details.Name)
}

func TestGetAppDetails_MissingFieldsStayNil(t *testing.T) {
	server := fixtureServer(t, "testdata/app_details_minimal.json")

	details, err := NewClient(server.URL, "", nil).GetAppDetails(context.Background(), 570)
	require.NoError(t, err)

	p := details.Patch()
	assert.Equal(t, "Dota 2", *p.Name)
	assert.Nil(t, p.Description)
	assert.Nil(t, p.Developer)
	assert.Nil(t, p.Publisher)
	assert.Nil(t, p.ReleaseDate)
	assert.Nil(t, p.ReviewScore)
}

func TestGetAppDetails_Unsuccessful(t *testing.T) {
	server := fixtureServer(t, "testdata/app_details_failure.json")

	_, err := NewClient(server.URL, "", nil).GetAppDetails(context.Background(), 999999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetAppDetails_MissingKey(t *testing.T) {
	server := fixtureServer(t, "testdata/app_details_success.json")

	_, err := NewClient(server.URL, "", nil).GetAppDetails(context.Background(), 1)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetAppDetails_ErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	_, err := NewClient(server.URL, "", nil).GetAppDetails(context.Background(), 10)
	require.Error(t, err)
	assert.True(t, upstream.IsStatus(err))
}

func TestGetAppDetails_InvalidJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html>maintenance</html>"))
	}))
	defer server.Close()

	_, err := NewClient(server.URL, "", nil).GetAppDetails(context.Background(), 10)
	assert.ErrorContains(t, err, "failed to parse JSON response")
}

func TestGetCover(t *testing.T) {
	image := []byte{0xff, 0xd8, 0xff, 0xe0}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/apps/620/capsule_sm_120.jpg", r.URL.Path)
		w.Header().Set("Content-Type", "image/jpeg")
		_, _ = w.Write(image)
	}))
	defer server.Close()

	data, err := NewClient("", server.URL+"/apps", nil).GetCover(context.Background(), 620)
	require.NoError(t, err)
	assert.Equal(t, image, data)
}

func TestGetCover_NotFound(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	defer server.Close()

	_, err := NewClient("", server.URL, nil).GetCover(context.Background(), 620)
	require.Error(t, err)
	assert.True(t, upstream.IsStatus(err))
}

func TestGetCover_OversizedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write(make([]byte, upstream.MaxBodyBytes+1))
	}))
	defer server.Close()

	_, err := NewClient("", server.URL, nil).GetCover(context.Background(), 620)
	assert.ErrorIs(t, err, upstream.ErrBodyTooLarge)
}

func TestPatch_NilDetails(t *testing.T) {
	var d *AppDetails
	assert.True(t, d.Patch().IsEmpty())
}

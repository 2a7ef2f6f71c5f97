package source

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

const csv = "name,number,grade,role\nAoki,1,3,GK\nBaba,2,1,DF\n"

func TestHTTPSource_Fetch(t *testing.T) {
	var gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		_, _ = w.Write([]byte(csv))
	}))
	defer srv.Close()

	src := NewHTTP(srv.URL, time.Second, "tactics-test")
	body, err := src.Fetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, csv, body)
	assert.Equal(t, "tactics-test", gotUA)
	assert.Equal(t, srv.URL, src.String())
}

func TestHTTPSource_NonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := NewHTTP(srv.URL, time.Second, "").Fetch(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status=404")
}

func TestHTTPSource_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-time.After(time.Second):
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()

	_, err := NewHTTP(srv.URL, 50*time.Millisecond, "").Fetch(context.Background())
	require.Error(t, err)
}

func TestFileSource_Fetch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roster.csv")
	require.NoError(t, os.WriteFile(path, []byte(csv), 0o600))

	body, err := FileSource{Path: path}.Fetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, csv, body)

	_, err = FileSource{Path: filepath.Join(t.TempDir(), "missing.csv")}.Fetch(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestLoad_Success(t *testing.T) {
	res := Load(context.Background(), StaticSource{Name: "static", Text: csv}, zaptest.NewLogger(t))
	require.NoError(t, res.Err)
	assert.Len(t, res.Records, 2)
	assert.Equal(t, xxhash.Sum64String(csv), res.Fingerprint)
	assert.Equal(t, "static", res.Source)
	assert.Len(t, res.Short(), 8)
	assert.False(t, res.Empty())
}

func TestLoad_HeaderOnlyIsEmptyNotFatal(t *testing.T) {
	res := Load(context.Background(), StaticSource{Text: "name,number,grade,role\n"}, nil)
	assert.ErrorIs(t, res.Err, ErrEmptySource)
	assert.True(t, res.Empty())
	assert.NotZero(t, res.Fingerprint)
}

func TestLoad_FetchFailureIsEmpty(t *testing.T) {
	res := Load(context.Background(), FileSource{Path: "/nonexistent/roster.csv"}, nil)
	require.Error(t, res.Err)
	assert.True(t, res.Empty())
	assert.Zero(t, res.Fingerprint)
}

func TestLoad_DistinctLoadIDs(t *testing.T) {
	src := StaticSource{Text: csv}
	a := Load(context.Background(), src, nil)
	b := Load(context.Background(), src, nil)
	assert.NotEqual(t, a.LoadID, b.LoadID)
	assert.Equal(t, a.Fingerprint, b.Fingerprint)
}

func TestLoader_AsyncPoll(t *testing.T) {
	l := NewLoader(StaticSource{Text: csv}, zaptest.NewLogger(t))
	defer l.Close()

	_, ok := l.Poll()
	assert.False(t, ok, "nothing started yet")

	require.True(t, l.Start(context.Background()))
	assert.True(t, l.Pending())
	assert.False(t, l.Start(context.Background()), "second start while pending")

	var res Result
	require.Eventually(t, func() bool {
		var done bool
		res, done = l.Poll()
		return done
	}, time.Second, 5*time.Millisecond)

	assert.False(t, l.Pending())
	assert.Len(t, res.Records, 2)
	assert.True(t, l.Start(context.Background()), "restart after completion")
}

func TestLoader_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	l := NewLoader(StaticSource{Text: csv}, nil)
	require.True(t, l.Start(ctx))

	var res Result
	require.Eventually(t, func() bool {
		var done bool
		res, done = l.Poll()
		return done
	}, time.Second, 5*time.Millisecond)
	assert.ErrorIs(t, res.Err, context.Canceled)
	assert.True(t, res.Empty())
}

func TestDemo_Parses(t *testing.T) {
	res := Load(context.Background(), Demo(), nil)
	require.NoError(t, res.Err)
	assert.Len(t, res.Records, 16)
	assert.Equal(t, "demo", res.Source)
}

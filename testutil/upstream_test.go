package testutil_test

import (
	"context"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trilhabr/home-aggregator/testutil"
)

// TestUpstream_countsAndRecords verifies that registered handlers answer,
// unregistered paths 404, and both are counted.
func TestUpstream_countsAndRecords(t *testing.T) {
	up := testutil.NewUpstream(t)
	up.Handle("/api/trails", testutil.JSON(http.StatusOK, `{"items":[]}`))

	resp, err := http.Get(up.URL + "/api/trails?limit=3")
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"items":[]}`, string(body))
	assert.Equal(t, 1, up.Calls("/api/trails"))
	require.NotNil(t, up.LastRequest("/api/trails"))
	assert.Equal(t, "3", up.LastRequest("/api/trails").URL.Query().Get("limit"))

	resp, err = http.Get(up.URL + "/missing")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, 1, up.Calls("/missing"))
	assert.Nil(t, up.LastRequest("/never"))
}

// TestDelay_givesUpWhenClientLeaves verifies that a delayed handler returns as
// soon as the caller cancels.
func TestDelay_givesUpWhenClientLeaves(t *testing.T) {
	up := testutil.NewUpstream(t)
	up.Handle("/slow", testutil.Delay(time.Minute, testutil.Status(http.StatusOK)))

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, up.URL+"/slow", nil)
	require.NoError(t, err)

	start := time.Now()
	_, err = http.DefaultClient.Do(req)
	require.Error(t, err)
	assert.Less(t, time.Since(start), 5*time.Second)
}

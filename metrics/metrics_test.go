//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package metrics

import (
	"errors"
	"io"
	"math/big"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/markkurossi/groupdh/ring"
)

func TestRound(t *testing.T) {
	c := New()
	c.Round(0, 0, time.Millisecond)
	c.Round(0, 1, time.Millisecond)
	c.Round(1, 0, time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(c.RoundsTotal.WithLabelValues("0")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.RoundsTotal.WithLabelValues("1")))
	assert.Equal(t, 2, testutil.CollectAndCount(c.RoundDuration))
}

func TestAgreement(t *testing.T) {
	c := New()
	c.Agreement(nil, 10, 20)
	c.Agreement(errors.New("failed"), 1, 2)

	assert.Equal(t, 1.0,
		testutil.ToFloat64(c.AgreementTotal.WithLabelValues(StatusSuccess)))
	assert.Equal(t, 1.0,
		testutil.ToFloat64(c.AgreementTotal.WithLabelValues(StatusError)))
	assert.Equal(t, 11.0, testutil.ToFloat64(c.BytesSent))
	assert.Equal(t, 22.0, testutil.ToFloat64(c.BytesReceived))
}

func TestSimulateObserver(t *testing.T) {
	c := New()
	secrets := []*big.Int{big.NewInt(6), big.NewInt(15), big.NewInt(13)}
	_, stats, err := ring.Simulate(nil, big.NewInt(23), big.NewInt(5),
		secrets, c)
	require.NoError(t, err)
	c.Agreement(err, stats.Sent.Load(), stats.Recvd.Load())

	for id := 0; id < len(secrets); id++ {
		label := string(rune('0' + id))
		assert.Equal(t, 2.0,
			testutil.ToFloat64(c.RoundsTotal.WithLabelValues(label)))
	}
	assert.Greater(t, testutil.ToFloat64(c.BytesSent), 0.0)
}

func TestHandler(t *testing.T) {
	c := New()
	c.Round(0, 0, time.Millisecond)

	server := httptest.NewServer(c.Handler())
	defer server.Close()

	resp, err := server.Client().Get(server.URL)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(body), "groupdh_rounds_total"))
}

var _ ring.Observer = (*Collector)(nil)

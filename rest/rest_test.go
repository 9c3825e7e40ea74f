package rest

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sampleHand = strings.Join([]string{
	"Full Tilt Poker Game #33286946307: MiniFTOPS Main Event (255707037), Table 179 - NL Hold'em - 15/30 - 19:34:02 CET - 2013/09/22 [13:34:02 ET - 2013/09/22]",
	"Seat 1: Popp1987 (13,542)",
	"Seat 3: FatalRevange (9,940)",
	"Seat 5: egis25 (6,918)",
	"FatalRevange posts the small blind of 15",
	"egis25 posts the big blind of 30",
	"The button is in seat #1",
	"*** HOLE CARDS ***",
	"Dealt to FatalRevange [7c 2s]",
	"Popp1987 raises to 90",
	"FatalRevange folds",
	"egis25 folds",
	"*** SUMMARY ***",
	"Total pot 75 | Rake 0",
}, "\n")

func postParse(t *testing.T, body []byte) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := newRouter()
	w := httptest.NewRecorder()
	req, err := http.NewRequest(http.MethodPost, "/parse", bytes.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func TestParseEndpoint(t *testing.T) {
	body, err := jsoniter.Marshal(parseRequest{Room: "fulltilt", Text: sampleHand})
	require.NoError(t, err)

	w := postParse(t, body)
	require.Equal(t, http.StatusOK, w.Code)

	var response map[string]jsoniter.RawMessage
	require.NoError(t, jsoniter.Unmarshal(w.Body.Bytes(), &response))
	var handID string
	require.NoError(t, jsoniter.Unmarshal(response["id"], &handID))
	assert.Equal(t, "33286946307", handID)
	var hero string
	require.NoError(t, jsoniter.Unmarshal(response["hero"], &hero))
	assert.Equal(t, "FatalRevange", hero)
	assert.NotContains(t, response, "flop")
}

func TestParseEndpointBadHand(t *testing.T) {
	body, err := jsoniter.Marshal(parseRequest{Room: "fulltilt", Text: "not a hand"})
	require.NoError(t, err)

	w := postParse(t, body)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var response appError
	require.NoError(t, jsoniter.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, http.StatusUnprocessableEntity, response.Code)
	assert.Contains(t, response.Message, "header")
}

func TestParseEndpointBadBody(t *testing.T) {
	w := postParse(t, []byte("{not json"))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestReadyEndpoint(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := newRouter()
	w := httptest.NewRecorder()
	req, err := http.NewRequest(http.MethodGet, "/ready", nil)
	require.NoError(t, err)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

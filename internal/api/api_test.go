package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/tmazur/sketchbluff/internal/factory"
	"github.com/tmazur/sketchbluff/internal/testutil"
)

type APISuite struct {
	suite.Suite
	app    *factory.TestApp
	server *httptest.Server
	ctx    context.Context
}

func TestAPISuite(t *testing.T) {
	suite.Run(t, new(APISuite))
}

func (s *APISuite) SetupTest() {
	s.app = factory.NewTestApp()
	s.app.LoadTestPhrases()
	s.ctx = context.Background()

	router := NewRouter(RouterConfig{
		Logger:         testutil.NopLogger(),
		Storage:        s.app.Storage,
		PhrasesService: s.app.PhrasesService,
		WSHandler:      s.app.WSHandler,
	})
	s.server = httptest.NewServer(router)
}

func (s *APISuite) TearDownTest() {
	s.server.Close()
}

func (s *APISuite) getJSON(path string, out any) *http.Response {
	resp, err := http.Get(s.server.URL + path)
	s.Require().NoError(err)
	defer func() { _ = resp.Body.Close() }()

	if out != nil {
		s.Require().NoError(json.NewDecoder(resp.Body).Decode(out))
	}
	return resp
}

func (s *APISuite) TestHealth() {
	var result map[string]string
	resp := s.getJSON("/api/v1/health", &result)

	s.Equal(http.StatusOK, resp.StatusCode)
	s.Equal("ok", result["status"])
}

func (s *APISuite) TestGetRoom() {
	room, _, err := s.app.RoomController.CreateRoom(s.ctx, "host")
	s.Require().NoError(err)

	var result map[string]any
	resp := s.getJSON("/api/v1/rooms/"+string(room.ID), &result)

	s.Equal(http.StatusOK, resp.StatusCode)
	s.Equal(string(room.ID), result["id"])
	s.Equal("not_started", result["state"])
	s.Equal(float64(1), result["playerCount"])
	s.Equal(true, result["joinable"])
}

func (s *APISuite) TestGetRoomNotFound() {
	var result map[string]map[string]string
	resp := s.getJSON("/api/v1/rooms/999999", &result)

	s.Equal(http.StatusNotFound, resp.StatusCode)
	s.Equal("ROOM_NOT_FOUND", result["error"]["code"])
}

func (s *APISuite) TestSuggestions() {
	var result map[string][]string
	resp := s.getJSON("/api/v1/phrases/suggestions?count=2", &result)

	s.Equal(http.StatusOK, resp.StatusCode)
	s.Len(result["suggestions"], 2)
}

func (s *APISuite) TestSuggestionsDefaultCount() {
	var result map[string][]string
	resp := s.getJSON("/api/v1/phrases/suggestions", &result)

	s.Equal(http.StatusOK, resp.StatusCode)
	s.Len(result["suggestions"], 3)
}

func (s *APISuite) TestSuggestionsInvalidCount() {
	var result map[string]map[string]string
	resp := s.getJSON("/api/v1/phrases/suggestions?count=999", &result)

	s.Equal(http.StatusBadRequest, resp.StatusCode)
	s.Equal("INVALID_REQUEST", result["error"]["code"])
}

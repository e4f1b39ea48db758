package handler_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/suite"

	"voterguide/internal/catalog/handler"
	"voterguide/internal/catalog/service"
	candidatestore "voterguide/internal/catalog/store/candidate"
	endorserstore "voterguide/internal/catalog/store/endorser"
	measurestore "voterguide/internal/catalog/store/measure"
	measureendorsement "voterguide/internal/catalog/store/measure-endorsement"
	seatstore "voterguide/internal/catalog/store/seat"
	seatendorsement "voterguide/internal/catalog/store/seat-endorsement"
	jwttoken "voterguide/internal/jwt_token"
	"voterguide/pkg/testutil"
)

type HandlerSuite struct {
	suite.Suite
	router chi.Router
	token  string
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(HandlerSuite))
}

func (s *HandlerSuite) SetupTest() {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := service.New(service.Stores{
		Candidates:          candidatestore.NewMemory(),
		Seats:               seatstore.NewMemory(),
		Endorsers:           endorserstore.NewMemory(),
		Measures:            measurestore.NewMemory(),
		MeasureEndorsements: measureendorsement.NewMemory(),
		SeatEndorsements:    seatendorsement.NewMemory(),
	}, service.WithLogger(logger))

	jwtService := jwttoken.NewJWTService("test-signing-key", "voterguide", "voterguide")
	token, err := jwtService.GenerateToken("editor", time.Hour)
	s.Require().NoError(err)
	s.token = token

	h := handler.New(svc, logger, jwttoken.NewJWTServiceAdapter(jwtService))
	s.router = chi.NewRouter()
	h.Register(s.router)
}

func (s *HandlerSuite) do(method, path string, body any, authed bool) ([]byte, int) {
	var req *http.Request
	if body != nil {
		req = testutil.NewJSONRequest(s.T(), method, path, body)
	} else {
		req = testutil.NewRequest(s.T(), method, path)
	}
	if authed {
		req.Header.Set("Authorization", "Bearer "+s.token)
	}
	rr := testutil.DoRequest(s.router, req)
	return rr.Body.Bytes(), rr.Code
}

func (s *HandlerSuite) postJSON(path string, body any, out any) {
	req := testutil.NewJSONRequest(s.T(), http.MethodPost, path, body)
	req.Header.Set("Authorization", "Bearer "+s.token)
	rr := testutil.DoRequest(s.router, req)
	s.Require().Equal(http.StatusCreated, rr.Code, "POST %s: %s", path, rr.Body.String())
	if out != nil {
		testutil.DecodeJSON(s.T(), rr, out)
	}
}

func (s *HandlerSuite) getJSON(path string, out any) int {
	req := testutil.NewRequest(s.T(), http.MethodGet, path)
	rr := testutil.DoRequest(s.router, req)
	if out != nil && rr.Code == http.StatusOK {
		testutil.DecodeJSON(s.T(), rr, out)
	}
	return rr.Code
}

type errorBody struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

type seatBody struct {
	ID       string `json:"id"`
	URL      string `json:"url"`
	Level    string `json:"level"`
	Role     string `json:"role"`
	State    string `json:"state"`
	District *int   `json:"district"`
}

type candidateBody struct {
	ID             string  `json:"id"`
	URL            string  `json:"url"`
	FirstName      string  `json:"first_name"`
	FullName       string  `json:"full_name"`
	Party          string  `json:"party"`
	RunningForSeat *string `json:"running_for_seat"`
	Seat           *string `json:"seat"`
}

func (s *HandlerSuite) createSeat() seatBody {
	var seat seatBody
	s.postJSON("/seats", map[string]any{
		"level": "S",
		"role":  "Governor",
		"state": "OR",
	}, &seat)
	return seat
}

func (s *HandlerSuite) createEndorser() map[string]any {
	var endorser map[string]any
	s.postJSON("/endorsers", map[string]any{
		"name":         "Bike Riders Organization",
		"abbreviation": "BRO",
	}, &endorser)
	return endorser
}

func (s *HandlerSuite) TestWritesRequireToken() {
	for _, tc := range []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/seats"},
		{http.MethodPut, "/seats/9b8e4f3e-15ad-4a3e-8a3f-111111111111"},
		{http.MethodPatch, "/candidates/9b8e4f3e-15ad-4a3e-8a3f-111111111111"},
		{http.MethodDelete, "/endorsers/9b8e4f3e-15ad-4a3e-8a3f-111111111111"},
	} {
		s.Run(tc.method+" "+tc.path, func() {
			body, code := s.do(tc.method, tc.path, map[string]any{}, false)
			s.Equal(http.StatusUnauthorized, code)
			s.Contains(string(body), `"error":"unauthorized"`)
		})
	}
}

func (s *HandlerSuite) TestGarbageTokenRejected() {
	req := testutil.NewJSONRequest(s.T(), http.MethodPost, "/seats", map[string]any{})
	req.Header.Set("Authorization", "Bearer not-a-token")
	rr := testutil.DoRequest(s.router, req)
	s.Equal(http.StatusUnauthorized, rr.Code)
}

func (s *HandlerSuite) TestReadsAreOpen() {
	code := s.getJSON("/candidates", nil)
	s.Equal(http.StatusOK, code)
	code = s.getJSON("/seats", nil)
	s.Equal(http.StatusOK, code)
}

func (s *HandlerSuite) TestCandidateLifecycle() {
	seat := s.createSeat()
	s.Equal("/seats/"+seat.ID, seat.URL)

	var candidate candidateBody
	s.postJSON("/candidates", map[string]any{
		"first_name":       "Donna",
		"middle_name":      "Lou",
		"last_name":        "Emerson",
		"running_for_seat": seat.URL,
	}, &candidate)

	s.Equal("/candidates/"+candidate.ID, candidate.URL)
	s.Equal("Donna Lou Emerson", candidate.FullName)
	s.Equal("U", candidate.Party)
	s.Require().NotNil(candidate.RunningForSeat)
	s.Equal(seat.URL, *candidate.RunningForSeat)
	s.Nil(candidate.Seat)

	var fetched candidateBody
	s.Equal(http.StatusOK, s.getJSON(candidate.URL, &fetched))
	s.Equal(candidate, fetched)

	_, code := s.do(http.MethodPatch, candidate.URL, map[string]any{"party": "D"}, true)
	s.Equal(http.StatusOK, code)
	s.getJSON(candidate.URL, &fetched)
	s.Equal("D", fetched.Party)
	s.Equal("Donna", fetched.FirstName)

	_, code = s.do(http.MethodDelete, candidate.URL, nil, true)
	s.Equal(http.StatusNoContent, code)
	s.Equal(http.StatusNotFound, s.getJSON(candidate.URL, nil))
}

func (s *HandlerSuite) TestSeatRoleDerivedInResponse() {
	var seat seatBody
	s.postJSON("/seats", map[string]any{
		"level":    "F",
		"branch":   "L",
		"body":     "H",
		"district": 2,
		"state":    "MN",
	}, &seat)
	s.Equal("Representative", seat.Role)
}

func (s *HandlerSuite) TestValidationEnvelope() {
	body, code := s.do(http.MethodPost, "/seats", map[string]any{
		"level": "C",
		"role":  "Mayor",
		"state": "OR",
	}, true)
	s.Equal(http.StatusBadRequest, code)

	var resp errorBody
	s.Require().NoError(json.Unmarshal(body, &resp))
	s.Equal("validation", resp.Error)
	s.Equal("City field must be set for seats with level of City.", resp.ErrorDescription)
}

func (s *HandlerSuite) TestConflictEnvelope() {
	s.createEndorser()

	body, code := s.do(http.MethodPost, "/endorsers", map[string]any{
		"name":         "Bus Riders Organization",
		"abbreviation": "bro",
	}, true)
	s.Equal(http.StatusConflict, code)

	var resp errorBody
	s.Require().NoError(json.Unmarshal(body, &resp))
	s.Equal("conflict", resp.Error)
	s.Contains(resp.ErrorDescription, "endorser_unique_abbreviation")
}

func (s *HandlerSuite) TestMalformedIDIsBadRequest() {
	code := s.getJSON("/seats/not-a-uuid", nil)
	s.Equal(http.StatusBadRequest, code)
}

func (s *HandlerSuite) TestUnknownIDIsNotFound() {
	code := s.getJSON("/measures/9b8e4f3e-15ad-4a3e-8a3f-111111111111", nil)
	s.Equal(http.StatusNotFound, code)
}

func (s *HandlerSuite) TestSeatEndorsementKeepsCandidateOrder() {
	seat := s.createSeat()
	s.createEndorser()

	var endorsers []map[string]any
	s.Equal(http.StatusOK, s.getJSON("/endorsers", &endorsers))
	endorserURL := endorsers[0]["url"].(string)

	var first, second candidateBody
	s.postJSON("/candidates", map[string]any{"first_name": "Donna", "last_name": "Emerson"}, &first)
	s.postJSON("/candidates", map[string]any{"first_name": "Yo-Yo", "last_name": "Engberk"}, &second)

	var endorsement struct {
		URL        string   `json:"url"`
		Candidates []string `json:"candidates"`
	}
	s.postJSON("/seat-endorsements", map[string]any{
		"endorser":      endorserURL,
		"seat":          seat.URL,
		"election_date": "2022-11-08",
		"candidates":    []string{second.URL, first.URL},
	}, &endorsement)

	s.Equal([]string{second.URL, first.URL}, endorsement.Candidates)
}

func (s *HandlerSuite) TestMeasureEndorsementDefaultsRecommendation() {
	s.createEndorser()
	var endorsers []map[string]any
	s.getJSON("/endorsers", &endorsers)
	endorserURL := endorsers[0]["url"].(string)

	var measure map[string]any
	s.postJSON("/measures", map[string]any{
		"name":          "26-232",
		"level":         "S",
		"state":         "OR",
		"election_date": "2022-11-08",
	}, &measure)

	var endorsement map[string]any
	s.postJSON("/measure-endorsements", map[string]any{
		"endorser":      endorserURL,
		"measure":       measure["url"],
		"election_date": "2022-11-08",
	}, &endorsement)

	s.Equal("U", endorsement["recommendation"])
	s.Equal(endorserURL, endorsement["endorser"])
}

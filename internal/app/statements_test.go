package app

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/metinatakli/theatrical-statements/api"
	"github.com/metinatakli/theatrical-statements/internal/domain"
	"github.com/metinatakli/theatrical-statements/internal/mocks"
	"github.com/metinatakli/theatrical-statements/internal/statement"
	"github.com/metinatakli/theatrical-statements/internal/validator"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

var testCatalog = map[string]*domain.CatalogPlay{
	"hamlet":  newCatalogPlay("hamlet", "Hamlet", 4024, domain.GenreTragedy),
	"as-like": newCatalogPlay("as-like", "As You Like It", 2670, domain.GenreComedy),
	"othello": newCatalogPlay("othello", "Othello", 3560, domain.GenreTragedy),
	"henry-v": newCatalogPlay("henry-v", "Henry V", 3227, domain.GenreHistory),
}

var bigCoRequest = api.CreateStatementRequest{
	Customer: "BigCo",
	Performances: []api.PerformanceRequest{
		{PlayId: "hamlet", Audience: 55},
		{PlayId: "as-like", Audience: 35},
		{PlayId: "othello", Audience: 40},
	},
}

const bigCoText = "Statement for BigCo\n" +
	"  Hamlet: $650.00 (55 seats)\n" +
	"  As You Like It: $547.00 (35 seats)\n" +
	"  Othello: $456.00 (40 seats)\n" +
	"Amount owed is $1,653.00\n" +
	"You earned 47 credits\n"

func catalogSubset(ids ...string) map[string]*domain.CatalogPlay {
	plays := make(map[string]*domain.CatalogPlay, len(ids))
	for _, id := range ids {
		plays[id] = testCatalog[id]
	}

	return plays
}

type StatementTestSuite struct {
	suite.Suite
	app      *application
	playRepo *mocks.MockPlayRepo
}

func (s *StatementTestSuite) SetupTest() {
	s.playRepo = new(mocks.MockPlayRepo)

	s.app = newTestApplication(func(a *application) {
		a.playRepo = s.playRepo
	})
}

func TestStatementSuite(t *testing.T) {
	suite.Run(t, new(StatementTestSuite))
}

func (s *StatementTestSuite) TestCreateStatement() {
	tests := []struct {
		name            string
		url             string
		accept          string
		input           any
		setupMocks      func()
		wantStatus      int
		wantErrMessage  string
		wantContentType string
		wantBody        string
	}{
		{
			name:           "should fail when format is unknown",
			url:            "/statements?format=pdf",
			input:          bigCoRequest,
			wantStatus:     http.StatusBadRequest,
			wantErrMessage: `unknown statement format: "pdf"`,
		},
		{
			name:           "should fail when body is empty",
			url:            "/statements",
			wantStatus:     http.StatusBadRequest,
			wantErrMessage: "body must not be empty",
		},
		{
			name:           "should fail when customer is missing",
			url:            "/statements",
			input:          api.CreateStatementRequest{},
			wantStatus:     http.StatusUnprocessableEntity,
			wantErrMessage: validator.ErrRequired,
		},
		{
			name: "should fail when audience is below one",
			url:  "/statements",
			input: api.CreateStatementRequest{
				Customer:     "BigCo",
				Performances: []api.PerformanceRequest{{PlayId: "hamlet", Audience: 0}},
			},
			wantStatus:     http.StatusUnprocessableEntity,
			wantErrMessage: fmt.Sprintf(validator.ErrMinLength, "1"),
		},
		{
			name: "should fail when a play is not in the catalog",
			url:  "/statements",
			input: api.CreateStatementRequest{
				Customer: "BigCo",
				Performances: []api.PerformanceRequest{
					{PlayId: "hamlet", Audience: 55},
					{PlayId: "macbeth", Audience: 20},
				},
			},
			setupMocks: func() {
				s.playRepo.On("GetByIDs", mock.Anything, []string{"hamlet", "macbeth"}).Return(catalogSubset("hamlet"), nil)
			},
			wantStatus:     http.StatusNotFound,
			wantErrMessage: `play "macbeth" not found`,
		},
		{
			name:  "should fail when catalog lookup fails",
			url:   "/statements",
			input: bigCoRequest,
			setupMocks: func() {
				s.playRepo.On("GetByIDs", mock.Anything, mock.Anything).Return(nil, fmt.Errorf("database error"))
			},
			wantStatus:     http.StatusInternalServerError,
			wantErrMessage: ErrInternalServer,
		},
		{
			name:  "should render text statement by default",
			url:   "/statements",
			input: bigCoRequest,
			setupMocks: func() {
				s.playRepo.On("GetByIDs", mock.Anything, []string{"hamlet", "as-like", "othello"}).
					Return(catalogSubset("hamlet", "as-like", "othello"), nil)
			},
			wantStatus:      http.StatusOK,
			wantContentType: statement.FormatText.ContentType(),
			wantBody:        bigCoText,
		},
		{
			name:  "should render xml statement from query parameter",
			url:   "/statements?format=xml",
			input: bigCoRequest,
			setupMocks: func() {
				s.playRepo.On("GetByIDs", mock.Anything, mock.Anything).
					Return(catalogSubset("hamlet", "as-like", "othello"), nil)
			},
			wantStatus:      http.StatusOK,
			wantContentType: statement.FormatXML.ContentType(),
		},
		{
			name:   "should render json statement from accept header",
			url:    "/statements",
			accept: "application/json",
			input:  bigCoRequest,
			setupMocks: func() {
				s.playRepo.On("GetByIDs", mock.Anything, mock.Anything).
					Return(catalogSubset("hamlet", "as-like", "othello"), nil)
			},
			wantStatus:      http.StatusOK,
			wantContentType: statement.FormatJSON.ContentType(),
		},
		{
			name:  "should look up repeated plays once and price them separately",
			url:   "/statements",
			input: api.CreateStatementRequest{
				Customer: "BigCo",
				Performances: []api.PerformanceRequest{
					{PlayId: "henry-v", Audience: 20},
					{PlayId: "henry-v", Audience: 31},
				},
			},
			setupMocks: func() {
				s.playRepo.On("GetByIDs", mock.Anything, []string{"henry-v"}).Return(catalogSubset("henry-v"), nil)
			},
			wantStatus:      http.StatusOK,
			wantContentType: statement.FormatText.ContentType(),
			wantBody: "Statement for BigCo\n" +
				"  Henry V: $382.70 (20 seats)\n" +
				"  Henry V: $580.70 (31 seats)\n" +
				"Amount owed is $963.40\n" +
				"You earned 11 credits\n",
		},
		{
			name: "should render empty statement",
			url:  "/statements",
			input: api.CreateStatementRequest{
				Customer: "Nobody",
			},
			setupMocks: func() {
				s.playRepo.On("GetByIDs", mock.Anything, []string{}).Return(map[string]*domain.CatalogPlay{}, nil)
			},
			wantStatus:      http.StatusOK,
			wantContentType: statement.FormatText.ContentType(),
			wantBody: "Statement for Nobody\n" +
				"Amount owed is $0.00\n" +
				"You earned 0 credits\n",
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.SetupTest()
			defer s.playRepo.AssertExpectations(s.T())

			if tt.setupMocks != nil {
				tt.setupMocks()
			}

			w, r := executeRequest(s.T(), http.MethodPost, tt.url, tt.input)
			if tt.accept != "" {
				r.Header.Set("Accept", tt.accept)
			}

			s.app.routes().ServeHTTP(w, r)

			s.Equal(tt.wantStatus, w.Code)

			if tt.wantStatus == http.StatusOK {
				s.Equal(tt.wantContentType, w.Header().Get("Content-Type"))

				_, err := uuid.Parse(w.Header().Get(statementIDHeader))
				s.NoError(err, "statement id header must be a uuid")

				if tt.wantBody != "" {
					s.Equal(tt.wantBody, w.Body.String())
				}
			}

			checkErrorResponse(s.T(), w, struct {
				wantStatus     int
				wantErrMessage string
			}{
				wantStatus:     tt.wantStatus,
				wantErrMessage: tt.wantErrMessage,
			})
		})
	}
}

// The same request rendered as text and xml must report the same totals.
func (s *StatementTestSuite) TestStatementFormatsAgree() {
	s.playRepo.On("GetByIDs", mock.Anything, mock.Anything).Return(catalogSubset("hamlet", "as-like", "othello"), nil)

	w, r := executeRequest(s.T(), http.MethodPost, "/statements?format=xml", bigCoRequest)
	s.app.routes().ServeHTTP(w, r)
	s.Require().Equal(http.StatusOK, w.Code)

	parsed, err := statement.ParseXML(w.Body)
	s.Require().NoError(err)

	s.Equal("1653.00", parsed.AmountOwed.StringFixed(2))
	s.Equal("47", parsed.EarnedCredits.String())
	s.Require().Len(parsed.Lines, 3)

	for _, line := range parsed.Lines {
		s.Contains(bigCoText, fmt.Sprintf("  %s: $%s (%d seats)\n", line.PlayName, line.Amount.StringFixed(2), line.Audience))
	}
}

func (s *StatementTestSuite) TestStatementFormat() {
	formatParam := func(f api.CreateStatementParamsFormat) *api.CreateStatementParamsFormat {
		return &f
	}

	tests := []struct {
		name   string
		format *api.CreateStatementParamsFormat
		accept string
		want   statement.Format
	}{
		{name: "defaults to text", want: statement.FormatText},
		{name: "query wins over accept", format: formatParam(api.Json), accept: "application/xml", want: statement.FormatJSON},
		{name: "empty query falls back to accept", format: formatParam(""), accept: "application/xml", want: statement.FormatXML},
		{name: "accept xml", accept: "application/xml", want: statement.FormatXML},
		{name: "first recognised accept entry", accept: "text/html, text/xml;q=0.9", want: statement.FormatXML},
		{name: "accept text", accept: "text/plain", want: statement.FormatText},
		{name: "accept anything", accept: "*/*", want: statement.FormatText},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			_, r := executeRequest(s.T(), http.MethodPost, "/statements", nil)
			if tt.accept != "" {
				r.Header.Set("Accept", tt.accept)
			}

			got, err := statementFormat(r, tt.format)
			s.Require().NoError(err)
			s.Equal(tt.want, got)
		})
	}
}

func (s *StatementTestSuite) TestStatementFormatUnknown() {
	_, r := executeRequest(s.T(), http.MethodPost, "/statements", nil)
	format := api.CreateStatementParamsFormat("pdf")

	_, err := statementFormat(r, &format)
	s.ErrorIs(err, statement.ErrUnknownFormat)
}

// Audiences large enough to overflow int arithmetic are refused before
// pricing.
func (s *StatementTestSuite) TestCreateStatementRejectsHugeAudience() {
	input := api.CreateStatementRequest{
		Customer: "BigCo",
		Performances: []api.PerformanceRequest{
			{PlayId: "as-like", Audience: 2_000_000_000_000_000_000},
		},
	}

	w, r := executeRequest(s.T(), http.MethodPost, "/statements", input)
	s.app.routes().ServeHTTP(w, r)

	s.Equal(http.StatusUnprocessableEntity, w.Code)
	checkErrorResponse(s.T(), w, struct {
		wantStatus     int
		wantErrMessage string
	}{
		wantStatus:     http.StatusUnprocessableEntity,
		wantErrMessage: fmt.Sprintf(validator.ErrMaxLength, "1000000"),
	})

	s.playRepo.AssertNotCalled(s.T(), "GetByIDs", mock.Anything, mock.Anything)
}

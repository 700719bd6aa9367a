package v1_test

import (
	"bytes"
	"fmt"
	"net/http"
	"testing"

	v1 "github.com/gl-recovery/backend/internal/controllers/v1"
	"github.com/gl-recovery/backend/test"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestSessionCreate() {
	sess := suite.createDefaultSession(suite.T())

	// The row with the non-numeric amount is dropped, everything else is kept
	assert.Equal(suite.T(), 1, sess.DroppedRows)
	assert.Equal(suite.T(), 5, sess.Totals.Records)
	assert.Equal(suite.T(), 3, sess.Totals.GLCodes)
	assert.Equal(suite.T(), 3, sess.Totals.Orders)
	assert.Equal(suite.T(), 3, sess.Totals.Categories)
	assert.True(suite.T(), sess.Totals.TotalAmount.Equal(decimal.NewFromFloat(1635.75)), "total amount is %s", sess.Totals.TotalAmount)

	self := fmt.Sprintf("http://example.com/v1/sessions/%s", sess.ID)
	assert.Equal(suite.T(), self, sess.Links.Self)
	assert.Equal(suite.T(), self+"/summary/gl", sess.Links.GLSummary)
	assert.Equal(suite.T(), self+"/export", sess.Links.Exports)
}

// TestSessionCreateCSV verifies that both uploads can also be CSV files.
func (suite *TestSuiteStandard) TestSessionCreateCSV() {
	dump := ",GL Account,,,,,Order/IO,,,,,,Amount (AED)\n" +
		",4010,,,,,30102204,,,,,,1500.50\n"
	descriptions := "GL Account,Description,Category\n" +
		"4010,Travel Recovery,Travel\n"

	body, contentType := test.UploadBody(suite.T(),
		test.File{Field: "dump", Name: "dump.csv", Content: bytes.NewBufferString(dump)},
		test.File{Field: "descriptions", Name: "descriptions.csv", Content: bytes.NewBufferString(descriptions)},
	)

	r := test.Request(suite.co, suite.T(), http.MethodPost, "http://example.com/v1/sessions", body, map[string]string{"Content-Type": contentType})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var response v1.SessionResponse
	test.DecodeResponse(suite.T(), &r, &response)
	require.NotNil(suite.T(), response.Data)

	assert.Equal(suite.T(), 0, response.Data.DroppedRows)
	assert.Equal(suite.T(), 1, response.Data.Totals.Records)
	assert.True(suite.T(), response.Data.Totals.TotalAmount.Equal(decimal.NewFromFloat(1500.5)))
}

func (suite *TestSuiteStandard) TestSessionCreateFails() {
	tests := []struct {
		name     string
		files    func(t *testing.T) []test.File
		contains string // Substring the error message must contain
	}{
		{
			"Missing description file",
			func(t *testing.T) []test.File {
				return []test.File{
					{Field: "dump", Name: "dump.xlsx", Content: test.Workbook(t, defaultDumpRows())},
				}
			},
			"missing form field",
		},
		{
			"No files at all",
			func(t *testing.T) []test.File {
				return nil
			},
			"missing form field",
		},
		{
			"Unsupported file suffix",
			func(t *testing.T) []test.File {
				return []test.File{
					{Field: "dump", Name: "dump.pdf", Content: bytes.NewBufferString("%PDF-1.7")},
					{Field: "descriptions", Name: "descriptions.xlsx", Content: test.Workbook(t, defaultDescriptionRows())},
				}
			},
			"only supports files of the following types",
		},
		{
			"Dump is not a workbook",
			func(t *testing.T) []test.File {
				return []test.File{
					{Field: "dump", Name: "dump.xlsx", Content: bytes.NewBufferString("this is not a spreadsheet")},
					{Field: "descriptions", Name: "descriptions.xlsx", Content: test.Workbook(t, defaultDescriptionRows())},
				}
			},
			"",
		},
		{
			"Dump has too few columns",
			func(t *testing.T) []test.File {
				rows := [][]any{
					{"GL Account", "Amount (AED)"},
					{"4010", 10},
				}

				return []test.File{
					{Field: "dump", Name: "dump.xlsx", Content: test.Workbook(t, rows)},
					{Field: "descriptions", Name: "descriptions.xlsx", Content: test.Workbook(t, defaultDescriptionRows())},
				}
			},
			"fewer columns than the column layout requires",
		},
		{
			"Dump is empty",
			func(t *testing.T) []test.File {
				return []test.File{
					{Field: "dump", Name: "dump.xlsx", Content: test.Workbook(t, [][]any{})},
					{Field: "descriptions", Name: "descriptions.xlsx", Content: test.Workbook(t, defaultDescriptionRows())},
				}
			},
			"contains no rows",
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			body, contentType := test.UploadBody(t, tt.files(t)...)

			r := test.Request(suite.co, t, http.MethodPost, "http://example.com/v1/sessions", body, map[string]string{"Content-Type": contentType})
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)

			var response v1.SessionResponse
			test.DecodeResponse(t, &r, &response)
			require.NotNil(t, response.Error)
			assert.Contains(t, *response.Error, tt.contains)
		})
	}
}

// TestSessionGetSingle verifies that requests for the session endpoint are
// handled correctly.
func (suite *TestSuiteStandard) TestSessionGetSingle() {
	sess := suite.createDefaultSession(suite.T())

	tests := []struct {
		name   string
		id     string
		status int
		method string
	}{
		{"GET Existing session", sess.ID.String(), http.StatusOK, http.MethodGet},
		// The nil UUID binds like any other UUID, there is just no session
		// stored under it
		{"GET ID nil", uuid.Nil.String(), http.StatusNotFound, http.MethodGet},
		{"GET No session with this ID", uuid.New().String(), http.StatusNotFound, http.MethodGet},
		{"GET Invalid ID (negative number)", "-56", http.StatusBadRequest, http.MethodGet},
		{"GET Invalid ID (positive number)", "23", http.StatusBadRequest, http.MethodGet},
		{"GET Invalid ID (string)", "notaUUID", http.StatusBadRequest, http.MethodGet},
		{"DELETE Invalid ID (negative number)", "-56", http.StatusBadRequest, http.MethodDelete},
		{"DELETE Invalid ID (string)", "notaUUID", http.StatusBadRequest, http.MethodDelete},
		{"DELETE No session with this ID", uuid.New().String(), http.StatusNotFound, http.MethodDelete},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(suite.co, t, tt.method, fmt.Sprintf("http://example.com/v1/sessions/%s", tt.id), "")
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestSessionDelete() {
	sess := suite.createDefaultSession(suite.T())
	path := fmt.Sprintf("http://example.com/v1/sessions/%s", sess.ID)

	r := test.Request(suite.co, suite.T(), http.MethodDelete, path, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	// The session is gone, both for reads and repeated deletion
	r = test.Request(suite.co, suite.T(), http.MethodGet, path, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	r = test.Request(suite.co, suite.T(), http.MethodDelete, path, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

// TestSessionOptions verifies that OPTIONS requests are handled correctly.
func (suite *TestSuiteStandard) TestSessionOptions() {
	tests := []struct {
		name   string
		id     string // path at the /v1/sessions endpoint to test
		status int    // Expected HTTP status code
	}{
		{"No session with this ID", uuid.New().String(), http.StatusNotFound},
		{"Not a valid UUID", "NotParseableAsUUID", http.StatusBadRequest},
		{"Session exists", suite.createDefaultSession(suite.T()).ID.String(), http.StatusNoContent},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			path := fmt.Sprintf("%s/%s", "http://example.com/v1/sessions", tt.id)
			r := test.Request(suite.co, t, http.MethodOptions, path, "")
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.status == http.StatusNoContent {
				assert.Equal(t, "GET, DELETE", r.Header().Get("allow"))
			}
		})
	}
}

func (suite *TestSuiteStandard) TestSessionListOptions() {
	r := test.Request(suite.co, suite.T(), http.MethodOptions, "http://example.com/v1/sessions", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	assert.Equal(suite.T(), "POST", r.Header().Get("allow"))
}

// TestSessionSubOptions verifies OPTIONS for the read-only sub-resources.
func (suite *TestSuiteStandard) TestSessionSubOptions() {
	sess := suite.createDefaultSession(suite.T())

	tests := []string{
		"categories",
		"codes",
		"records",
		"summary",
		"summary/gl",
		"summary/orders",
		"query",
		"export/gl",
		"export/orders",
		"export/query",
	}

	for _, tt := range tests {
		suite.T().Run(tt, func(t *testing.T) {
			r := test.Request(suite.co, t, http.MethodOptions, fmt.Sprintf("http://example.com/v1/sessions/%s/%s", sess.ID, tt), "")
			test.AssertHTTPStatus(t, &r, http.StatusNoContent)
			assert.Equal(t, "GET", r.Header().Get("allow"))
		})
	}
}

// TestCleanup verifies that DELETE on the API version root deletes all
// sessions.
func (suite *TestSuiteStandard) TestCleanup() {
	first := suite.createDefaultSession(suite.T())
	second := suite.createDefaultSession(suite.T())

	r := test.Request(suite.co, suite.T(), http.MethodDelete, "http://example.com/v1", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	for _, id := range []string{first.ID.String(), second.ID.String()} {
		r = test.Request(suite.co, suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/sessions/%s", id), "")
		test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
	}
}

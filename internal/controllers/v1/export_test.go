package v1_test

import (
	"fmt"
	"net/http"
	"regexp"
	"testing"

	"github.com/gl-recovery/backend/test"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestExportGLSummary() {
	sess := suite.createDefaultSession(suite.T())

	r := test.Request(suite.co, suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/sessions/%s/export/gl", sess.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	assert.Equal(suite.T(), "text/csv", r.Header().Get("Content-Type"))
	assert.Regexp(suite.T(),
		regexp.MustCompile(`^attachment; filename="GL_Summary_\d{8}_\d{6}\.csv"$`),
		r.Header().Get("Content-Disposition"))

	assert.Equal(suite.T(),
		"GL Code,GL Description,Category,Total Amount (AED),Number of Records\n"+
			"4010,Travel Recovery,Travel,1500.5,2\n"+
			"4020,Parking Recovery,Parking,125.25,2\n"+
			"5000,Telecom Recovery,Telecom,10,1\n",
		r.Body.String())
}

func (suite *TestSuiteStandard) TestExportGLSummaryFiltered() {
	sess := suite.createDefaultSession(suite.T())

	r := test.Request(suite.co, suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/sessions/%s/export/gl?categories=Telecom", sess.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	assert.Equal(suite.T(),
		"GL Code,GL Description,Category,Total Amount (AED),Number of Records\n"+
			"5000,Telecom Recovery,Telecom,10,1\n",
		r.Body.String())
}

func (suite *TestSuiteStandard) TestExportOrderSummary() {
	sess := suite.createDefaultSession(suite.T())

	r := test.Request(suite.co, suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/sessions/%s/export/orders", sess.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	assert.Regexp(suite.T(),
		regexp.MustCompile(`^attachment; filename="Order_Summary_\d{8}_\d{6}\.csv"$`),
		r.Header().Get("Content-Disposition"))

	assert.Equal(suite.T(),
		"Order/IO,Total Amount (AED),Number of GLs\n"+
			"30102204,1575.75,2\n"+
			"40205001,50,1\n"+
			"50000001,10,1\n",
		r.Body.String())
}

func (suite *TestSuiteStandard) TestExportQueryDetail() {
	sess := suite.createDefaultSession(suite.T())

	r := test.Request(suite.co, suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/sessions/%s/export/query?order=30102204", sess.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	// The query term becomes part of the filename
	assert.Regexp(suite.T(),
		regexp.MustCompile(`^attachment; filename="Recoveries_30102204_\d{8}_\d{6}\.csv"$`),
		r.Header().Get("Content-Disposition"))

	assert.Equal(suite.T(),
		"GL Code,GL Description,Category,Amount (AED)\n"+
			"4010,Travel Recovery,Travel,1500.5\n"+
			"4020,Parking Recovery,Parking,75.25\n",
		r.Body.String())
}

// TestExportQueryNoMatches verifies that a query without matches still
// produces a CSV download, just one without data rows.
func (suite *TestSuiteStandard) TestExportQueryNoMatches() {
	sess := suite.createDefaultSession(suite.T())

	r := test.Request(suite.co, suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/sessions/%s/export/query?order=99999999", sess.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	assert.Equal(suite.T(), "GL Code,GL Description,Category,Amount (AED)\n", r.Body.String())
}

func (suite *TestSuiteStandard) TestExportFails() {
	sess := suite.createDefaultSession(suite.T())

	tests := []struct {
		name   string
		path   string
		status int
	}{
		{"Query export without order", fmt.Sprintf("%s/export/query", sess.ID), http.StatusBadRequest},
		{"GL export for unknown session", "d9aa45a1-b232-4d7c-a27f-9bb2b8107b9f/export/gl", http.StatusNotFound},
		{"Order export for invalid ID", "notaUUID/export/orders", http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(suite.co, t, http.MethodGet, fmt.Sprintf("http://example.com/v1/sessions/%s", tt.path), "")
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

package test

import (
	"bytes"
	"io"
	"mime/multipart"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// dumpWidth is the column count of the standard GL dump layout.
const dumpWidth = 13

// Workbook builds an in-memory xlsx workbook with a single sheet containing
// the rows.
func Workbook(t *testing.T, rows [][]any) *bytes.Buffer {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	return buf
}

// DumpHeader returns a header row in the standard GL dump layout.
func DumpHeader() []any {
	return DumpRow("GL Account", "Order/IO", "Amount (AED)")
}

// DumpRow returns a data row in the standard GL dump layout with the GL
// code, Order/IO and amount cells set. All other cells are empty.
func DumpRow(code, order string, amount any) []any {
	row := make([]any, dumpWidth)
	for i := range row {
		row[i] = ""
	}

	row[1] = code
	row[6] = order
	row[12] = amount

	return row
}

// DescriptionRows returns GL description rows with the standard header.
// Every entry maps a GL code to its description and category.
func DescriptionRows(entries ...[3]string) [][]any {
	rows := [][]any{{"GL Account", "Description", "Category"}}
	for _, entry := range entries {
		rows = append(rows, []any{entry[0], entry[1], entry[2]})
	}

	return rows
}

// File is one spreadsheet in a multipart upload.
type File struct {
	Field   string
	Name    string
	Content *bytes.Buffer
}

// UploadBody builds a multipart/form-data request body from the files. The
// second return value is the Content-Type header to send with the request.
func UploadBody(t *testing.T, files ...File) (*bytes.Buffer, string) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	for _, file := range files {
		part, err := writer.CreateFormFile(file.Field, file.Name)
		require.NoError(t, err)

		_, err = io.Copy(part, file.Content)
		require.NoError(t, err)
	}

	require.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}

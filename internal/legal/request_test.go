package legal

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, body string) (Request, error) {
	t.Helper()
	return DecodeRequest(strings.NewReader(body))
}

func requireCode(t *testing.T, err error, code ErrorCode) *Error {
	t.Helper()
	require.Error(t, err)
	le, ok := AsError(err)
	require.True(t, ok, "expected *legal.Error, got %T", err)
	require.Equal(t, code, le.Code)
	return le
}

func TestDecodeRequest_Advice(t *testing.T) {
	req, err := decode(t, `{"mode":"advice","country":"France","case_description":"landlord won't return deposit"}`)
	require.NoError(t, err)
	require.Equal(t, Request{Mode: ModeAdvice, Country: "France", CaseDescription: "landlord won't return deposit"}, req)
}

func TestDecodeRequest_Document(t *testing.T) {
	req, err := decode(t, `{"mode":"document","country":"Kenya","case_description":"unpaid invoice","doc_type":"Demand Letter"}`)
	require.NoError(t, err)
	require.Equal(t, ModeDocument, req.Mode)
	require.Equal(t, "Demand Letter", req.DocType)
}

func TestDecodeRequest_AdviceIgnoresNullDocType(t *testing.T) {
	req, err := decode(t, `{"mode":"advice","country":"Peru","case_description":"x","doc_type":null}`)
	require.NoError(t, err)
	require.Empty(t, req.DocType)
}

func TestDecodeRequest_InvalidMode(t *testing.T) {
	for _, mode := range []string{"", "ADVICE", "letter", "documents"} {
		t.Run(mode, func(t *testing.T) {
			_, err := decode(t, `{"mode":"`+mode+`","country":"France","case_description":"x"}`)
			le := requireCode(t, err, ErrorInvalidMode)
			require.Equal(t, `mode must be "advice" or "document"`, le.Message)
		})
	}
}

func TestDecodeRequest_DocumentRequiresDocType(t *testing.T) {
	cases := map[string]string{
		"absent":     `{"mode":"document","country":"France","case_description":"x"}`,
		"null":       `{"mode":"document","country":"France","case_description":"x","doc_type":null}`,
		"empty":      `{"mode":"document","country":"France","case_description":"x","doc_type":""}`,
		"whitespace": `{"mode":"document","country":"France","case_description":"x","doc_type":"   "}`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := decode(t, body)
			le := requireCode(t, err, ErrorInvalidInput)
			require.Equal(t, "doc_type is required for document mode", le.Message)
		})
	}
}

func TestDecodeRequest_MissingRequiredFields(t *testing.T) {
	_, err := decode(t, `{"mode":"advice"}`)
	le := requireCode(t, err, ErrorInvalidInput)
	require.Contains(t, le.Message, "country")
	require.Contains(t, le.Message, "case_description")
}

func TestDecodeRequest_MissingModeIsInvalidInput(t *testing.T) {
	_, err := decode(t, `{"country":"France","case_description":"x"}`)
	le := requireCode(t, err, ErrorInvalidInput)
	require.Contains(t, le.Message, "mode")
}

func TestDecodeRequest_RejectsMalformedBodies(t *testing.T) {
	cases := map[string]string{
		"not json":      `not-json`,
		"unknown field": `{"mode":"advice","country":"France","case_description":"x","urgent":true}`,
		"wrong type":    `{"mode":"advice","country":42,"case_description":"x"}`,
		"trailing data": `{"mode":"advice","country":"France","case_description":"x"} {}`,
		"empty":         ``,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := decode(t, body)
			requireCode(t, err, ErrorInvalidInput)
		})
	}
}

func TestError_WrapsCause(t *testing.T) {
	cause := errors.New("boom")
	err := NewError(ErrorAuthentication, "check credentials", cause)
	require.ErrorIs(t, err, cause)
	require.Contains(t, err.Error(), "AUTHENTICATION_FAILED")
	require.Contains(t, err.Error(), "boom")

	var nilErr *Error
	require.Empty(t, nilErr.Error())
	require.Nil(t, nilErr.Unwrap())
}

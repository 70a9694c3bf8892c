package remote

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/googleapis/gax-go/v2/apierror"
	"google.golang.org/api/googleapi"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Message extracts a human readable message from a remote failure.
// The first match wins:
//  1. the error's own message field (gRPC status message, googleapi Message)
//  2. its details (googleapi details or body, gax error reason)
//  3. its code followed by the error text
//  4. a full serialization of the error value
func Message(err error) string {
	if err == nil {
		return ""
	}
	if m := messageField(err); m != "" {
		return m
	}
	if d := detailsField(err); d != "" {
		return d
	}
	if c := codeField(err); c != "" {
		return c + ": " + err.Error()
	}
	return serialize(err)
}

// Code returns the gRPC code carried by err, mapping googleapi HTTP errors
// onto their gRPC equivalents. codes.Unknown means no code was found.
func Code(err error) codes.Code {
	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		return httpToCode(gerr.Code)
	}
	if st, ok := statusOf(err); ok {
		return st.Code()
	}
	return codes.Unknown
}

type grpcStatus interface {
	GRPCStatus() *status.Status
}

// statusOf finds a gRPC status anywhere in the wrap chain without folding
// the wrapping text into the status message.
func statusOf(err error) (*status.Status, bool) {
	var gs grpcStatus
	if errors.As(err, &gs) {
		if st := gs.GRPCStatus(); st != nil {
			return st, true
		}
	}
	return nil, false
}

func messageField(err error) string {
	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		return strings.TrimSpace(gerr.Message)
	}
	if st, ok := statusOf(err); ok {
		return strings.TrimSpace(st.Message())
	}
	return ""
}

func detailsField(err error) string {
	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		if len(gerr.Details) > 0 {
			if b, jerr := json.Marshal(gerr.Details); jerr == nil {
				return string(b)
			}
		}
		return strings.TrimSpace(gerr.Body)
	}
	var aerr *apierror.APIError
	if errors.As(err, &aerr) {
		return aerr.Reason()
	}
	return ""
}

func codeField(err error) string {
	var gerr *googleapi.Error
	if errors.As(err, &gerr) && gerr.Code != 0 {
		return fmt.Sprintf("HTTP %d", gerr.Code)
	}
	if st, ok := statusOf(err); ok && st.Code() != codes.OK && st.Code() != codes.Unknown {
		return st.Code().String()
	}
	return ""
}

func serialize(err error) string {
	if b, jerr := json.Marshal(err); jerr == nil {
		if s := string(b); s != "{}" && s != "null" && s != `""` {
			return s
		}
	}
	if text := err.Error(); text != "" {
		return text
	}
	return fmt.Sprintf("%#v", err)
}

func httpToCode(httpCode int) codes.Code {
	switch httpCode {
	case 400:
		return codes.InvalidArgument
	case 401:
		return codes.Unauthenticated
	case 403:
		return codes.PermissionDenied
	case 404:
		return codes.NotFound
	case 409:
		return codes.AlreadyExists
	case 429:
		return codes.ResourceExhausted
	case 500:
		return codes.Internal
	case 503:
		return codes.Unavailable
	default:
		return codes.Unknown
	}
}

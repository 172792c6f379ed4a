package api

import "github.com/samcharles93/elfscope/pkg/ehdr"

type ResponseError struct {
	Message string `json:"message"`
	Type    string `json:"type"`
	Code    string `json:"code,omitempty"`
}

// HeaderResponse is the JSON body of a successful decode.
type HeaderResponse struct {
	ID     string       `json:"id"`
	Object string       `json:"object"`
	Size   int          `json:"size"`
	Strict bool         `json:"strict"`
	Header ehdr.Summary `json:"header"`
}

type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

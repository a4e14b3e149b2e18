package errtag

import "net/http"

type codeInternal struct{}

func (codeInternal) Code() int    { return http.StatusInternalServerError }
func (codeInternal) Kind() string { return "internal" }

type codeNotFound struct{}

func (codeNotFound) Code() int    { return http.StatusNotFound }
func (codeNotFound) Kind() string { return "not_found" }

type codeAlphabet struct{}

func (codeAlphabet) Code() int    { return http.StatusBadRequest }
func (codeAlphabet) Kind() string { return "alphabet" }

type codeCipherUsage struct{}

func (codeCipherUsage) Code() int    { return http.StatusUnprocessableEntity }
func (codeCipherUsage) Kind() string { return "cipher_usage" }

var kindText = map[string]string{
	"internal":     "internal error",
	"not_found":    "not found",
	"alphabet":     "alphabet error",
	"cipher_usage": "cipher usage error",
}

// Package api exposes the password generator over HTTP.
//
//	POST /v1/passwords   generate count values from a JSON request
//	GET  /v1/phonetic    spell the text query parameter phonetically
//	GET  /healthz        liveness probe
//
// Bodies are decoded over a default request, so omitted fields keep their
// configured values. Successful responses are wrapped as {"data": ...};
// failures as {"error": {"code", "message"}} with status 400 for generator
// errors and malformed input. Every response carries X-Request-ID.
package api

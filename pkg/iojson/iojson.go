// Package iojson holds helpers for reading and writing JSON from a command
// line interface: indented documents for humans, JSON lines for pipes, and a
// fixed error envelope for failures.
package iojson

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// Error is the envelope written to stderr when a JSON-mode command fails.
type Error struct {
	Message string         `json:"message"`
	Data    map[string]any `json:"data,omitempty"`
}

func jsonError(msg string, jsonErr error) string {
	msgBytes, _ := json.Marshal(msg)
	errBytes, _ := json.Marshal(jsonErr.Error())
	return fmt.Sprintf(`{"message":%s,"data":{"json_error":%s}}`, msgBytes, errBytes)
}

// MarshalError renders msg and data as an Error envelope. If data cannot be
// marshaled the envelope is built by hand and carries the marshal error
// instead, which indicates a bug in the caller.
func MarshalError(msg string, data map[string]any) string {
	bits, err := json.MarshalIndent(Error{Message: msg, Data: data}, "", "  ")
	if err != nil {
		return jsonError(msg, err)
	}
	return string(bits)
}

// WriteError writes an Error envelope to ew and returns an error carrying
// msg so the command still exits non-zero.
func WriteError(ew io.Writer, msg string, data map[string]any) error {
	if _, err := fmt.Fprintln(ew, MarshalError(msg, data)); err != nil {
		return err
	}
	return fmt.Errorf("%s", msg)
}

// WriteWith writes obj as indented JSON to w. Marshal failures are reported
// on ew as an Error envelope.
func WriteWith(w io.Writer, ew io.Writer, obj any) error {
	bits, err := json.MarshalIndent(obj, "", "  ")
	if err != nil {
		_, werr := fmt.Fprintln(ew, jsonError("error marshaling in iojson.Write", err))
		if werr != nil {
			return werr
		}
		return fmt.Errorf("marshal output: %w", err)
	}

	_, err = fmt.Fprintln(w, string(bits))
	return err
}

// WriteLine writes obj as a single compact JSON line.
func WriteLine(w io.Writer, obj any) error {
	bits, err := json.Marshal(obj)
	if err != nil {
		return fmt.Errorf("marshal line: %w", err)
	}
	_, err = fmt.Fprintln(w, string(bits))
	return err
}

// Write calls WriteWith with [os.Stdout] and [os.Stderr].
func Write(obj any) error {
	return WriteWith(os.Stdout, os.Stderr, obj)
}

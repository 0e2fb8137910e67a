package httputil

import (
	"encoding/csv"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestWriteJSONError(t *testing.T) {
	w := httptest.NewRecorder()
	WriteJSONError(w, http.StatusBadRequest, "bad input")

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q", ct)
	}
	var body map[string]string
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	if body["error"] != "bad input" {
		t.Errorf(`error = %q, want "bad input"`, body["error"])
	}
}

func TestWriteJSONOK(t *testing.T) {
	w := httptest.NewRecorder()
	WriteJSONOK(w, []string{"a", "b"})

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", w.Code)
	}
	if got := strings.TrimSpace(w.Body.String()); got != `["a","b"]` {
		t.Errorf("body = %q", got)
	}
}

func TestWriteCSVAttachment(t *testing.T) {
	w := httptest.NewRecorder()
	header := []string{"district", "risk"}
	rows := [][]string{{"Ernakulam", "0.03"}, {"Kollam", ""}}

	if err := WriteCSVAttachment(w, "out.csv", header, rows); err != nil {
		t.Fatalf("WriteCSVAttachment failed: %v", err)
	}

	if ct := w.Header().Get("Content-Type"); ct != "text/csv" {
		t.Errorf("Content-Type = %q", ct)
	}
	if cd := w.Header().Get("Content-Disposition"); cd != "attachment; filename=out.csv" {
		t.Errorf("Content-Disposition = %q", cd)
	}

	records, err := csv.NewReader(w.Body).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 3 {
		t.Fatalf("got %d records, want 3", len(records))
	}
	if records[2][1] != "" {
		t.Errorf("blank cell = %q, want empty", records[2][1])
	}
}

package symbols

import (
	"reflect"
	"strings"
	"testing"
)

func TestParseNSEList(t *testing.T) {
	csvData := `SYMBOL, NAME OF COMPANY, SERIES, DATE OF LISTING
RELIANCE,Reliance Industries Limited,EQ,29-NOV-1995
TCS,Tata Consultancy Services Limited,EQ,25-AUG-2004
INFY,Infosys Limited,EQ,08-FEB-1995
`
	got, err := parseNSEList(strings.NewReader(csvData))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"RELIANCE.NS", "TCS.NS", "INFY.NS"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("parseNSEList = %v, want %v", got, want)
	}
}

func TestParseNSEList_Empty(t *testing.T) {
	if _, err := parseNSEList(strings.NewReader("")); err == nil {
		t.Error("expected error for empty listing")
	}
}

func TestParseBSEList_TableWrapper(t *testing.T) {
	data := `{"Table":[{"scrip_id":"RELIANCE"},{"scrip_id":"TATAMOTORS"},{"scrip_id":""}]}`
	got, err := parseBSEList([]byte(data))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"RELIANCE.BO", "TATAMOTORS.BO"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("parseBSEList = %v, want %v", got, want)
	}
}

func TestParseBSEList_BareArray(t *testing.T) {
	data := `[{"scrip_id":"SBIN"},{"scrip_id":"HDFCBANK"}]`
	got, err := parseBSEList([]byte(data))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"SBIN.BO", "HDFCBANK.BO"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("parseBSEList = %v, want %v", got, want)
	}
}

func TestParseBSEList_Malformed(t *testing.T) {
	if _, err := parseBSEList([]byte("<html>blocked</html>")); err == nil {
		t.Error("expected error for HTML response")
	}
}

func TestMerge(t *testing.T) {
	got := Merge(
		[]string{"TCS.NS", "RELIANCE.NS", ""},
		[]string{"RELIANCE.NS", "SBIN.BO", "TCS.NS"},
	)
	want := []string{"RELIANCE.NS", "SBIN.BO", "TCS.NS"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Merge = %v, want %v", got, want)
	}
}

func TestMerge_Empty(t *testing.T) {
	if got := Merge(nil, []string{}); len(got) != 0 {
		t.Errorf("expected empty merge, got %v", got)
	}
}

package extract

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	types "github.com/yungbote/lessongen/internal/domain"
	"github.com/yungbote/lessongen/internal/platform/logger"
)

func TestRecords_SingleLine(t *testing.T) {
	got := Records("qstn:What is 2+2? opt:1,2,3,4 ans:4", types.QuestionMarkers, nil)
	want := []types.QuestionRecord{{
		Question:      "What is 2+2?",
		Options:       []string{"1", "2", "3", "4"},
		CorrectAnswer: "4",
	}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("records mismatch (-want +got):\n%s", diff)
	}
}

func TestRecords_EmptyInput(t *testing.T) {
	for _, markers := range [][]types.Marker{types.QuestionMarkers, types.TopicTaggedMarkers, nil} {
		got := Records("", markers, nil)
		if len(got) != 0 {
			t.Fatalf("expected no records for markers %v, got %d", markers, len(got))
		}
	}
}

func TestRecords_SkipsLinesMissingMarkers(t *testing.T) {
	raw := strings.Join([]string{
		"Here are your questions:",
		"qstn:What keyword defines a function? opt:func,def,fn,lambda ans:def",
		"qstn:Broken line without options ans:x",
		"",
		"qstn:Which type is immutable? opt:list,dict,tuple,set ans:tuple",
	}, "\n")

	got := Records(raw, types.QuestionMarkers, logger.Nop())
	if len(got) != 2 {
		t.Fatalf("len=%d want=2: %+v", len(got), got)
	}
	if got[0].CorrectAnswer != "def" || got[1].CorrectAnswer != "tuple" {
		t.Fatalf("unexpected answers: %q, %q", got[0].CorrectAnswer, got[1].CorrectAnswer)
	}
}

func TestRecords_SkipsOutOfOrderLineWithoutAbortingBatch(t *testing.T) {
	raw := "ans:4 qstn:What is 2+2? opt:1,2,3,4\nqstn:Q2 opt:a,b ans:b"
	got := Records(raw, types.QuestionMarkers, logger.Nop())
	want := []types.QuestionRecord{{Question: "Q2", Options: []string{"a", "b"}, CorrectAnswer: "b"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("records mismatch (-want +got):\n%s", diff)
	}
}

func TestRecords_TopicTagged(t *testing.T) {
	raw := "1. qstn: What does len() return? opt: a count, a list ,None, an error ans: a count top: builtins\r"
	got := Records(raw, types.TopicTaggedMarkers, nil)
	want := []types.QuestionRecord{{
		Question:      "What does len() return?",
		Options:       []string{"a count", "a list", "None", "an error"},
		CorrectAnswer: "a count",
		Topic:         "builtins",
	}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("records mismatch (-want +got):\n%s", diff)
	}
}

func TestRecords_NoValidationOfAnswerOrOptionCount(t *testing.T) {
	got := Records("qstn:Pick one opt:only,,dup,dup,five,six ans:not listed", types.QuestionMarkers, nil)
	if len(got) != 1 {
		t.Fatalf("len=%d want=1", len(got))
	}
	if diff := cmp.Diff([]string{"only", "", "dup", "dup", "five", "six"}, got[0].Options); diff != "" {
		t.Fatalf("options mismatch (-want +got):\n%s", diff)
	}
	if got[0].CorrectAnswer != "not listed" {
		t.Fatalf("answer=%q", got[0].CorrectAnswer)
	}
}

func TestScanLine_FieldsAreTrimmedInterMarkerText(t *testing.T) {
	cases := []struct {
		name    string
		line    string
		markers []types.Marker
		want    Fields
	}{
		{
			name:    "three markers",
			line:    "qstn:  A  opt: b,c  ans:  d ",
			markers: types.QuestionMarkers,
			want:    Fields{types.MarkerQuestion: "A", types.MarkerOptions: "b,c", types.MarkerAnswer: "d"},
		},
		{
			name:    "four markers",
			line:    "qstn:A opt:b ans:c top:d",
			markers: types.TopicTaggedMarkers,
			want:    Fields{types.MarkerQuestion: "A", types.MarkerOptions: "b", types.MarkerAnswer: "c", types.MarkerTopic: "d"},
		},
		{
			name:    "empty fields",
			line:    "qstn:opt:ans:",
			markers: types.QuestionMarkers,
			want:    Fields{types.MarkerQuestion: "", types.MarkerOptions: "", types.MarkerAnswer: ""},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ScanLine(tc.line, tc.markers)
			if err != nil {
				t.Fatalf("ScanLine: %v", err)
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("fields mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestScanLine_EmbeddedMarkerCorruptsFollowingFields(t *testing.T) {
	// Known protocol limitation: "ans:" inside the question ends the scan early.
	got, err := ScanLine("qstn:What is ans: in Python? opt:a,b ans:a", types.QuestionMarkers)
	if err != nil {
		t.Fatalf("ScanLine: %v", err)
	}
	if got[types.MarkerQuestion] != "What is ans: in Python?" {
		t.Fatalf("question=%q", got[types.MarkerQuestion])
	}

	got, err = ScanLine("qstn:Does opt: mean option? opt:yes,no ans:yes", types.QuestionMarkers)
	if err != nil {
		t.Fatalf("ScanLine: %v", err)
	}
	if got[types.MarkerQuestion] != "Does" {
		t.Fatalf("expected truncated question, got %q", got[types.MarkerQuestion])
	}
	if got[types.MarkerOptions] != "mean option? opt:yes,no" {
		t.Fatalf("expected corrupted options, got %q", got[types.MarkerOptions])
	}
}

func TestScanLine_Errors(t *testing.T) {
	if _, err := ScanLine("qstn:a opt:b", types.QuestionMarkers); !errors.Is(err, ErrMissingMarker) {
		t.Fatalf("expected ErrMissingMarker, got %v", err)
	}
	_, err := ScanLine("opt:b qstn:a ans:c", types.QuestionMarkers)
	var pe *LineParseError
	if !errors.As(err, &pe) {
		t.Fatalf("expected *LineParseError, got %v", err)
	}
	if pe.Marker != types.MarkerAnswer && pe.Marker != types.MarkerOptions {
		t.Fatalf("unexpected marker %q", pe.Marker)
	}
}

func TestParseLines_ReportsPerLineOutcome(t *testing.T) {
	results := ParseLines("intro\nqstn:a opt:b ans:c\nans:c opt:b qstn:a", types.QuestionMarkers)
	if len(results) != 3 {
		t.Fatalf("len=%d want=3", len(results))
	}
	if results[0].Outcome != LineSkipped || !errors.Is(results[0].Err, ErrMissingMarker) {
		t.Fatalf("line 1: %+v", results[0])
	}
	if results[1].Outcome != LineOK || results[1].Line != 2 || results[1].Record.Question != "a" {
		t.Fatalf("line 2: %+v", results[1])
	}
	var pe *LineParseError
	if results[2].Outcome != LineSkipped || !errors.As(results[2].Err, &pe) || pe.Line != 3 {
		t.Fatalf("line 3: %+v", results[2])
	}
}

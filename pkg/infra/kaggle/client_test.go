package kaggle

import "testing"

func TestAttachmentName(t *testing.T) {
	tests := []struct {
		header   string
		expected string
	}{
		{header: `attachment; filename=titanic.zip`, expected: "titanic.zip"},
		{header: `attachment; filename="train.csv"`, expected: "train.csv"},
		{header: `attachment; filename="../../etc/passwd"`, expected: "passwd"},
		{header: `attachment; filename="..\\evil.zip"`, expected: "evil.zip"},
		{header: `attachment; filename=".."`, expected: ""},
		{header: `attachment`, expected: ""},
		{header: ``, expected: ""},
		{header: `;;;`, expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			if got := attachmentName(tt.header); got != tt.expected {
				t.Errorf("attachmentName(%q) = %q, want %q", tt.header, got, tt.expected)
			}
		})
	}
}

func TestValidateCompetition(t *testing.T) {
	for _, id := range []string{"titanic", "playground-series-s5e2", "a.b"} {
		if err := validateCompetition(id); err != nil {
			t.Errorf("validateCompetition(%q) unexpected error: %v", id, err)
		}
	}
	for _, id := range []string{"", ".", "..", "a/b", `a\b`, "../titanic"} {
		if err := validateCompetition(id); err == nil {
			t.Errorf("validateCompetition(%q) should fail", id)
		}
	}
}

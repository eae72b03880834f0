package docrank

import (
	"bytes"
	"strings"
	"testing"
)

func TestTermSetKey_OrderIndependent(t *testing.T) {
	a := termSetKey([]string{"fur", "pet", "funny", "curly"})
	b := termSetKey([]string{"curly", "funny", "pet", "fur"})
	if a != b {
		t.Errorf("termSetKey order-dependent: %q != %q", a, b)
	}
}

func TestRemoveDuplicates_CanonicalSurvivorSet(t *testing.T) {
	idx := NewInvertedIndex()
	stop := newTestStopWords(t, nil)

	docs := []struct {
		id   DocumentId
		text string
	}{
		{1, "funny pet nice fur"},
		{2, "funny pet curly fur"},
		{3, "fur pet funny curly"},      // same set as 2
		{4, "pet funny nice fur"},       // same set as 1
		{5, "nice fur pet funny"},       // same set as 1
		{6, "nasty rat sat mat"},
		{7, "mat sat rat nasty"},        // same set as 6
		{8, "nasty rat sat pit"},
		{9, "zebra lion tiger"},
	}
	for _, d := range docs {
		if err := idx.AddDocument(d.id, d.text, ACTUAL, nil, stop); err != nil {
			t.Fatalf("AddDocument(%d): %v", d.id, err)
		}
	}

	var sink bytes.Buffer
	if err := removeDuplicates(idx, &sink); err != nil {
		t.Fatalf("removeDuplicates: %v", err)
	}

	wantSurvivors := []DocumentId{1, 2, 6, 8, 9}
	gotSurvivors := idx.ascendingIDs()
	if len(gotSurvivors) != len(wantSurvivors) {
		t.Fatalf("survivors = %v, want %v", gotSurvivors, wantSurvivors)
	}
	for i := range wantSurvivors {
		if gotSurvivors[i] != wantSurvivors[i] {
			t.Errorf("survivors[%d] = %d, want %d", i, gotSurvivors[i], wantSurvivors[i])
		}
	}

	wantLines := []string{
		"Found duplicate document id 3",
		"Found duplicate document id 4",
		"Found duplicate document id 5",
		"Found duplicate document id 7",
	}
	gotOutput := sink.String()
	lines := strings.Split(strings.TrimRight(gotOutput, "\n"), "\n")
	if len(lines) != len(wantLines) {
		t.Fatalf("diagnostic lines = %v, want %v", lines, wantLines)
	}
	for i := range wantLines {
		if lines[i] != wantLines[i] {
			t.Errorf("line[%d] = %q, want %q", i, lines[i], wantLines[i])
		}
	}
}

func TestRemoveDuplicates_NoDuplicatesIsNoop(t *testing.T) {
	idx := NewInvertedIndex()
	stop := newTestStopWords(t, nil)
	if err := idx.AddDocument(1, "cat", ACTUAL, nil, stop); err != nil {
		t.Fatal(err)
	}
	if err := idx.AddDocument(2, "dog", ACTUAL, nil, stop); err != nil {
		t.Fatal(err)
	}

	var sink bytes.Buffer
	if err := removeDuplicates(idx, &sink); err != nil {
		t.Fatalf("removeDuplicates: %v", err)
	}
	if sink.Len() != 0 {
		t.Errorf("sink = %q, want empty", sink.String())
	}
	if idx.count() != 2 {
		t.Errorf("count = %d, want 2", idx.count())
	}
}

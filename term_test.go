package docrank

import "testing"

func TestTokenize(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want []string
	}{
		{"simple", "cat in the city", []string{"cat", "in", "the", "city"}},
		{"leading and trailing spaces", "  cat   dog  ", []string{"cat", "dog"}},
		{"empty", "", nil},
		{"only spaces", "     ", nil},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := tokenize(c.in)
			if len(got) != len(c.want) {
				t.Fatalf("tokenize(%q) = %v, want %v", c.in, got, c.want)
			}
			for i := range got {
				if got[i] != c.want[i] {
					t.Errorf("tokenize(%q)[%d] = %q, want %q", c.in, i, got[i], c.want[i])
				}
			}
		})
	}
}

func TestHasControlByte(t *testing.T) {
	if hasControlByte("hello world") {
		t.Error("hasControlByte(\"hello world\") = true, want false")
	}
	if !hasControlByte("hello\tworld") {
		t.Error("hasControlByte with tab = false, want true")
	}
	if !hasControlByte("hello\x01world") {
		t.Error("hasControlByte with 0x01 = false, want true")
	}
}

func TestNewStopWords_FromString(t *testing.T) {
	sw, err := newStopWords("in the")
	if err != nil {
		t.Fatalf("newStopWords: %v", err)
	}
	if !sw.contains("in") || !sw.contains("the") {
		t.Error("expected stop words \"in\" and \"the\"")
	}
	if sw.contains("cat") {
		t.Error("\"cat\" should not be a stop word")
	}
}

func TestNewStopWords_FromSlice(t *testing.T) {
	sw, err := newStopWords([]string{"sa", "", "sa"})
	if err != nil {
		t.Fatalf("newStopWords: %v", err)
	}
	if !sw.contains("sa") {
		t.Error("expected stop word \"sa\"")
	}
	if sw.contains("") {
		t.Error("empty string should have been discarded")
	}
}

func TestNewStopWords_RejectsControlByte(t *testing.T) {
	_, err := newStopWords([]string{"sa\x01"})
	if err == nil {
		t.Fatal("expected an error for a control byte in a stop word")
	}
}

func TestInternPool_RefCounting(t *testing.T) {
	p := newInternPool()
	p.intern("cat")
	p.intern("cat")
	if p.size() != 1 {
		t.Fatalf("size = %d, want 1", p.size())
	}
	p.release("cat")
	if p.size() != 1 {
		t.Fatalf("size after one release = %d, want 1 (still referenced once)", p.size())
	}
	p.release("cat")
	if p.size() != 0 {
		t.Fatalf("size after second release = %d, want 0", p.size())
	}
}

package docrank

import "testing"

func TestPaginate_SplitsIntoEvenPages(t *testing.T) {
	docs := []Document{{ID: 1}, {ID: 2}, {ID: 3}, {ID: 4}}
	pages := Paginate(docs, 2)
	if len(pages) != 2 {
		t.Fatalf("len(pages) = %d, want 2", len(pages))
	}
	if len(pages[0]) != 2 || len(pages[1]) != 2 {
		t.Fatalf("pages = %v, want two pages of 2", pages)
	}
}

func TestPaginate_LastPageIsShorter(t *testing.T) {
	docs := []Document{{ID: 1}, {ID: 2}, {ID: 3}}
	pages := Paginate(docs, 2)
	if len(pages) != 2 {
		t.Fatalf("len(pages) = %d, want 2", len(pages))
	}
	if len(pages[0]) != 2 {
		t.Errorf("len(pages[0]) = %d, want 2", len(pages[0]))
	}
	if len(pages[1]) != 1 {
		t.Errorf("len(pages[1]) = %d, want 1", len(pages[1]))
	}
}

func TestPaginate_EmptyInputYieldsNoPages(t *testing.T) {
	if pages := Paginate(nil, 2); pages != nil {
		t.Errorf("Paginate(nil, 2) = %v, want nil", pages)
	}
}

func TestPaginate_ZeroPageSizeYieldsNoPages(t *testing.T) {
	docs := []Document{{ID: 1}}
	if pages := Paginate(docs, 0); pages != nil {
		t.Errorf("Paginate(docs, 0) = %v, want nil", pages)
	}
}

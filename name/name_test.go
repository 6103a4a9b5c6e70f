package name

import "testing"

func TestInternIdentity(t *testing.T) {
	tbl := New()

	a := tbl.InternString("hello")
	b := tbl.InternString("hello")

	if a != b {
		t.Fatalf("expected identical Name for repeated intern of %q", "hello")
	}
	if a.String() != "hello" {
		t.Errorf("String() = %q, want %q", a.String(), "hello")
	}
}

func TestInternDistinct(t *testing.T) {
	tbl := New()

	a := tbl.InternString("foo")
	b := tbl.InternString("bar")

	if a == b {
		t.Fatalf("expected distinct Names for %q and %q", "foo", "bar")
	}
}

func TestInternWindow(t *testing.T) {
	tbl := New()
	src := []byte("  classy  ")

	a := tbl.Intern(src, 2, 6)
	b := tbl.InternString("classy")

	if a != b {
		t.Fatalf("windowed intern did not match whole-string intern")
	}
}

func TestInternGrowsWithoutInvalidatingHandles(t *testing.T) {
	tbl := New()

	var names []Name
	for i := 0; i < 500; i++ {
		names = append(names, tbl.InternString(randomIdent(i)))
	}
	for i, n := range names {
		want := randomIdent(i)
		if n.String() != want {
			t.Fatalf("name %d: got %q, want %q", i, n.String(), want)
		}
	}
}

func TestFromName(t *testing.T) {
	tbl := New()
	n := tbl.InternString("abc")

	bytes, idx, length := FromName(n)
	if string(bytes) != "abc" {
		t.Errorf("bytes = %q, want %q", bytes, "abc")
	}
	if length != 3 {
		t.Errorf("length = %d, want 3", length)
	}
	if idx != int(n.Index()) {
		t.Errorf("index = %d, want %d", idx, n.Index())
	}
}

func randomIdent(seed int) string {
	const letters = "abcdefghijklmnopqrstuvwxyz"
	b := make([]byte, 1+seed%6)
	x := uint64(seed)*2654435761 + 1
	for i := range b {
		x = x*1103515245 + 12345
		b[i] = letters[(x>>8)%uint64(len(letters))]
	}
	return string(b)
}

func TestAcquireReleasePool(t *testing.T) {
	tbl := Acquire()
	tbl.InternString("pooled")
	Release(tbl)

	tbl2 := Acquire()
	if len(tbl2.entries) != 0 {
		t.Fatalf("expected pooled table to be reset, has %d entries", len(tbl2.entries))
	}
}

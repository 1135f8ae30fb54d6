package checkstyle

import (
	"strings"
	"testing"

	"github.com/ludo-technologies/csannotate/domain"
	"github.com/ludo-technologies/csannotate/internal/testutil"
)

func TestParse_Report(t *testing.T) {
	data := testutil.ReportXML(
		testutil.File{
			Name: "src/main/java/Foo.java",
			Errors: []testutil.Error{
				{Line: 12, Column: 5, Severity: "error", Message: "Missing semicolon", Source: "com.puppycrawl.tools.checkstyle.checks.coding.SemicolonCheck"},
				{Line: 3, Severity: "info", Message: "Consider final"},
			},
		},
		testutil.File{Name: "src/main/java/Bar.java"},
	)

	doc, err := Parse([]byte(data))
	testutil.AssertNoError(t, err)

	if len(doc.Files) != 2 {
		t.Fatalf("Expected 2 files, got %d", len(doc.Files))
	}
	foo := doc.Files[0]
	testutil.AssertEqual(t, "src/main/java/Foo.java", foo.Name)
	if len(foo.Violations) != 2 {
		t.Fatalf("Expected 2 violations, got %d", len(foo.Violations))
	}
	testutil.AssertEqual(t, domain.RawViolation{
		Line:     "12",
		Column:   "5",
		Severity: "error",
		Message:  "Missing semicolon",
		Source:   "com.puppycrawl.tools.checkstyle.checks.coding.SemicolonCheck",
	}, foo.Violations[0])
	testutil.AssertEqual(t, "", foo.Violations[1].Column)
	testutil.AssertEqual(t, "", foo.Violations[1].Source)

	if len(doc.Files[1].Violations) != 0 {
		t.Errorf("Expected Bar.java to have no violations, got %d", len(doc.Files[1].Violations))
	}
}

func TestParse_PreservesDocumentOrder(t *testing.T) {
	data := testutil.ReportXML(
		testutil.File{Name: "b.java", Errors: testutil.Repeat(3, "warning", "b")},
		testutil.File{Name: "a.java", Errors: testutil.Repeat(2, "error", "a")},
	)

	doc, err := Parse([]byte(data))
	testutil.AssertNoError(t, err)

	var got []string
	for _, f := range doc.Files {
		for _, v := range f.Violations {
			got = append(got, f.Name+":"+v.Message)
		}
	}
	want := []string{"b.java:b 1", "b.java:b 2", "b.java:b 3", "a.java:a 1", "a.java:a 2"}
	testutil.AssertEqual(t, strings.Join(want, ","), strings.Join(got, ","))
}

func TestParse_EscapedAttributes(t *testing.T) {
	data := `<checkstyle><file name="x.java"><error line="1" message="Use &lt;T&gt; &amp; &quot;ok&quot;"/></file></checkstyle>`

	doc, err := Parse([]byte(data))
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, `Use <T> & "ok"`, doc.Files[0].Violations[0].Message)
}

func TestParse_OtherRootElement(t *testing.T) {
	data := `<?xml version="1.0"?><pmd><file name="x.java"><error line="1"/></file></pmd>`

	doc, err := Parse([]byte(data))
	testutil.AssertNoError(t, err)
	if len(doc.Files) != 0 {
		t.Errorf("Expected no files for a non-checkstyle root, got %d", len(doc.Files))
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"empty", ""},
		{"whitespace only", "  \n\t"},
		{"unclosed element", `<checkstyle><file name="x.java">`},
		{"mismatched tags", `<checkstyle><file name="x.java"></checkstyle>`},
		{"not xml", "this is not xml"},
		{"trailing element", `<checkstyle></checkstyle><checkstyle></checkstyle>`},
		{"trailing text", `<checkstyle></checkstyle>garbage`},
		{"bad attribute", `<checkstyle><file name=x.java/></checkstyle>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := Parse([]byte(tt.data))
			testutil.AssertError(t, err)
			if doc != nil {
				t.Errorf("Expected nil document on error, got %+v", doc)
			}
		})
	}
}

func TestParse_TrailingWhitespaceAndComments(t *testing.T) {
	data := "<checkstyle><file name=\"x.java\"/></checkstyle>\n<!-- generated -->\n\n"

	doc, err := Parse([]byte(data))
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, 1, len(doc.Files))
}

func TestParse_Latin1(t *testing.T) {
	// 0xE9 is "é" in ISO-8859-1 and invalid on its own in UTF-8
	data := []byte("<?xml version=\"1.0\" encoding=\"ISO-8859-1\"?>\n" +
		"<checkstyle><file name=\"Caf\xe9.java\"><error line=\"1\" message=\"r\xe9sum\xe9\"/></file></checkstyle>")

	doc, err := Parse(data)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, "Café.java", doc.Files[0].Name)
	testutil.AssertEqual(t, "résumé", doc.Files[0].Violations[0].Message)
}

func TestParse_UnknownCharset(t *testing.T) {
	data := `<?xml version="1.0" encoding="x-made-up"?><checkstyle/>`

	_, err := Parse([]byte(data))
	testutil.AssertError(t, err)
}

func TestDecode_Reader(t *testing.T) {
	doc, err := Decode(strings.NewReader(`<checkstyle version="8.0"/>`))
	testutil.AssertNoError(t, err)
	if doc == nil || len(doc.Files) != 0 {
		t.Errorf("Expected an empty report, got %+v", doc)
	}
}

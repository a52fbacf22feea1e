package interp

import (
	"fmt"
	"strings"
	"testing"

	"github.com/cwbudde/go-lox/internal/diagnostics"
	"github.com/cwbudde/go-lox/internal/lexer"
	"github.com/cwbudde/go-lox/internal/parser"
	"github.com/cwbudde/go-lox/internal/resolver"
	"github.com/gkampitakis/go-snaps/snaps"
)

// TestTranscripts pins the full stdout transcript of representative
// programs, covering the scenarios spec.md §8 calls out: arithmetic,
// string concatenation, closures, class/method binding, and for-loop
// desugaring.
func TestTranscripts(t *testing.T) {
	programs := map[string]string{
		"arithmetic": `print 1 + 2;`,
		"string_concatenation": `print "a" + "b";`,
		"closure_counter": `
fun makeCounter() {
  var count = 0;
  fun increment() {
    count = count + 1;
    return count;
  }
  return increment;
}
var counter = makeCounter();
print counter();
print counter();
`,
		"class_method_binding": `
class Greeter {
  init(name) { this.name = name; }
  greet() { print "Hello, " + this.name + "!"; }
}
Greeter("Lox").greet();
`,
		"for_desugaring": `
for (var i = 0; i < 3; i = i + 1) print i;
`,
	}

	for name, source := range programs {
		t.Run(name, func(t *testing.T) {
			report := diagnostics.NewReport()
			tokens := lexer.New(source, report).ScanTokens()
			statements := parser.New(tokens, report).Parse()
			if report.HadError() {
				t.Fatalf("unexpected parse error(s): %v", report.All())
			}

			res := resolver.New(report)
			res.Resolve(statements)
			if report.HadError() {
				t.Fatalf("unexpected resolve error(s): %v", report.All())
			}

			var out strings.Builder
			in := New(&out)
			in.Resolve(res.Locals())
			if err := in.Interpret(statements); err != nil {
				out.WriteString(fmt.Sprintf("error: %v", err))
			}

			snaps.MatchSnapshot(t, out.String())
		})
	}
}

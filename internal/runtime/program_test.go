package runtime

import (
	"bytes"
	"testing"

	"github.com/cwbudde/mascal/internal/lexer"
	"github.com/cwbudde/mascal/internal/mascalerr"
	"github.com/cwbudde/mascal/internal/parser"
	"github.com/cwbudde/mascal/internal/semantic"
)

// runSource drives the full pipeline over src and returns its Write output,
// failing the test on any stage error. Grounded on DWScript's
// internal/interp test helper pattern (lex, parse, analyze, eval against a
// buffer).
func runSource(t *testing.T, src string) string {
	t.Helper()
	tree, err := parser.Parse(lexer.New(src).All())
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	if err := semantic.Analyze(tree); err != nil {
		t.Fatalf("semantic error: %v", err)
	}
	var buf bytes.Buffer
	if err := RunProgram(tree, &buf); err != nil {
		t.Fatalf("runtime error: %v", err)
	}
	return buf.String()
}

func TestRunProgramStringConcatenation(t *testing.T) {
	src := `DefineProgram {
		Variables { String { s; } }
		Implementation {
			s <- "Hello" + " World";
			Write(s);
		}
	}`
	if got, want := runSource(t, src), "Hello World\n"; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestRunProgramForLoopAccumulates(t *testing.T) {
	src := `DefineProgram {
		Variables { Integer { i; total; } }
		Implementation {
			total <- 0;
			For i From 1 To 5 {
				total <- total + i;
			}
			Write(total);
		}
	}`
	if got, want := runSource(t, src), "15\n"; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestRunProgramCallsUserFunction(t *testing.T) {
	src := `DefineFunction Add(a, b) -> Integer {
		Variables { Integer { a; b; } }
		Implementation {
			Add <- a + b;
		}
	}
	DefineProgram {
		Implementation {
			Write(Add(2, 3));
		}
	}`
	if got, want := runSource(t, src), "5\n"; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestRunProgramMutParameterWritesThrough(t *testing.T) {
	src := `DefineFunction Increment(Mut n) {
		Variables { Integer { n; } }
		Implementation {
			n <- n + 1;
		}
	}
	DefineProgram {
		Variables { Integer { x; } }
		Implementation {
			x <- 10;
			Increment(x);
			Write(x);
		}
	}`
	if got, want := runSource(t, src), "11\n"; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestRunProgramBuiltinCallIsCaseInsensitive(t *testing.T) {
	src := `DefineProgram {
		Implementation {
			WRITE("hi");
			write("there");
		}
	}`
	if got, want := runSource(t, src), "hi\nthere\n"; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestRunProgramNoReturnTypeAssigningOwnNameIsRuntimeError(t *testing.T) {
	src := `DefineFunction Oops() {
		Variables { Integer { x; } }
		Implementation {
			x <- 1;
			Oops <- x;
		}
	}
	DefineProgram {
		Implementation {
			Oops();
		}
	}`
	tree, err := parser.Parse(lexer.New(src).All())
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	if err := semantic.Analyze(tree); err != nil {
		t.Fatalf("semantic error: %v", err)
	}
	var buf bytes.Buffer
	runErr := RunProgram(tree, &buf)
	if runErr == nil {
		t.Fatal("expected a RuntimeError when a no-return-type function assigns its own name")
	}
	if runErr.Kind != mascalerr.RuntimeError {
		t.Fatalf("got error kind %v, want RuntimeError", runErr.Kind)
	}
}

func TestRunProgramArrayBracketMismatchOnReadIsIndexError(t *testing.T) {
	src := `DefineProgram {
		Variables { Integer { arr[3]; v; } }
		Implementation {
			v <- arr<<0>>;
		}
	}`
	tree, err := parser.Parse(lexer.New(src).All())
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	if err := semantic.Analyze(tree); err != nil {
		t.Fatalf("semantic error: %v", err)
	}
	var buf bytes.Buffer
	runErr := RunProgram(tree, &buf)
	if runErr == nil {
		t.Fatal("expected an error indexing a static array with dynamic brackets")
	}
	if runErr.Kind != mascalerr.IndexError {
		t.Fatalf("got error kind %v, want IndexError", runErr.Kind)
	}
}

func TestRunProgramConditionalBranches(t *testing.T) {
	src := `DefineProgram {
		Variables { Integer { x; } }
		Implementation {
			x <- 2;
			If x = 1 {
				Write("one");
			} ElseIf x = 2 {
				Write("two");
			} Else {
				Write("other");
			}
		}
	}`
	if got, want := runSource(t, src), "two\n"; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

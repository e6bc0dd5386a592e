package parser

import (
	"testing"

	"github.com/cwbudde/mascal/internal/ast"
	"github.com/cwbudde/mascal/internal/lexer"
	"github.com/gkampitakis/go-snaps/snaps"
)

// Snapshot-tests the AST printer against representative programs, one
// snapshot per case. Grounded on DWScript's use of go-snaps in
// internal/interp/fixture_test.go (snaps.MatchSnapshot(t, name, output)).
func TestASTSnapshots(t *testing.T) {
	cases := []struct {
		name string
		src  string
	}{
		{
			name: "program_with_arithmetic",
			src: `DefineProgram {
				Variables { Integer { total; } }
				Implementation {
					total <- 1 + 2 * 3;
					Write(total);
				}
			}`,
		},
		{
			name: "function_with_mut_parameter",
			src: `DefineFunction Increment(Mut x) -> Integer {
				Variables { Integer { x; } }
				Implementation {
					x <- x + 1;
					Increment <- x;
				}
			}
			DefineProgram { Implementation { } }`,
		},
		{
			name: "conditional_and_loops",
			src: `DefineProgram {
				Variables { Integer { i; n; } }
				Implementation {
					For i From 0 To 10 WithStep 1 {
						If i > 5 {
							Write(i);
						} ElseIf i = 5 {
							Write(0);
						} Else {
							n <- n + 1;
						}
					}
					While n > 0 {
						n <- n - 1;
					}
				}
			}`,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tree, err := Parse(lexer.New(tc.src).All())
			if err != nil {
				t.Fatalf("Parse(%s) returned error: %v", tc.name, err)
			}
			snaps.MatchSnapshot(t, tc.name, ast.Print(tree))
		})
	}
}

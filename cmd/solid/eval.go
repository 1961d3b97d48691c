package main

import (
	"fmt"

	"github.com/spf13/cobra"

	solid "github.com/COMMENTERTHE9/Blaze-sub002"
)

func newEvalCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "eval <lhs> <op> <rhs>",
		Short: "Combine two values with + - x / ^",
		Long: `Evaluate one arithmetic operation over solid values. Operands are
decimal literals, or "inf"/"-inf" for infinities. Use "x" for
multiplication to avoid shell globbing.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := parseOperand(args[0])
			if err != nil {
				return err
			}
			b, err := parseOperand(args[2])
			if err != nil {
				return err
			}
			result, err := applyOp(a, args[1], b)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), styleValue.Render(result.Display()))
			if result.IsUndefined() && result.Undef != nil {
				fmt.Fprintln(cmd.OutOrStdout(),
					styleDim.Render("undefined: "+result.Undef.Reason.String()+" — "+result.Undef.Detail))
			}
			return nil
		},
	}
	return cmd
}

func parseOperand(s string) (*solid.SolidValue, error) {
	switch s {
	case "inf", "∞":
		return solid.NewInfinity(false), nil
	case "-inf", "-∞":
		return solid.NewInfinity(true), nil
	}
	if _, ok := solidParseCheck(s); !ok {
		return nil, fmt.Errorf("cannot parse operand %q", s)
	}
	return solid.NewExact(s), nil
}

// solidParseCheck validates a decimal literal the same way the library
// does: optional sign, digits, at most one point.
func solidParseCheck(s string) (string, bool) {
	if s == "" {
		return "", false
	}
	i := 0
	if s[0] == '-' || s[0] == '+' {
		i = 1
	}
	point := false
	digit := false
	for ; i < len(s); i++ {
		switch {
		case s[i] >= '0' && s[i] <= '9':
			digit = true
		case s[i] == '.' && !point:
			point = true
		default:
			return "", false
		}
	}
	return s, digit
}

func applyOp(a *solid.SolidValue, op string, b *solid.SolidValue) (*solid.SolidValue, error) {
	switch op {
	case "+":
		return solid.Add(a, b), nil
	case "-":
		return solid.Subtract(a, b), nil
	case "x", "*":
		return solid.Multiply(a, b), nil
	case "/":
		return solid.Divide(a, b), nil
	case "^":
		return solid.Power(a, b), nil
	}
	return nil, fmt.Errorf("unknown operator %q", op)
}

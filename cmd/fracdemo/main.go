package main

import (
	"os"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"fractions/src/fractions"
)

func main() {
	_ = cmd.Execute()
}

var cmd = &cobra.Command{
	Use:   "fracdemo",
	Short: "Walk through the fractions library",
	Run:   run,
	Args:  cobra.NoArgs,
}

var flag = struct {
	LogLevel string
}{}

func init() {
	cmd.Flags().StringVar(&flag.LogLevel, "log-level", "info", "Log level")
}

func run(*cobra.Command, []string) {
	level, err := zerolog.ParseLevel(flag.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()

	section := color.New(color.FgCyan, color.Bold)

	section.Println("Basic operations")
	a := fractions.New[int64](1, 2)
	b := fractions.New[int64](3, 4)
	log.Info().Stringer("a", a).Stringer("b", b).Msg("operands")
	log.Info().Stringer("sum", a.Add(b)).Msg("a + b")
	log.Info().Stringer("difference", a.Sub(b)).Msg("a - b")
	log.Info().Stringer("product", a.Mul(b)).Msg("a * b")
	log.Info().Stringer("quotient", a.Div(b)).Msg("a / b")
	log.Info().Stringer("negation", a.Neg()).Msg("-a")

	section.Println("Zero denominator support")
	inf := fractions.New[int64](1, 0)
	zero := fractions.New[int64](0, 1)
	nan := fractions.New[int64](0, 0)
	log.Info().Stringer("infinity", inf).Stringer("zero", zero).Stringer("nan", nan).Msg("special values")
	log.Info().Stringer("result", zero.Div(nan)).Msg("zero / nan")
	log.Info().Stringer("result", inf.Mul(zero)).Msg("infinity * zero")
	log.Info().Float64("as_float", inf.Float64()).Msg("infinity converts")

	section.Println("Comparisons")
	log.Info().Bool("equal", fractions.New[int64](1, 2).Equal(fractions.New[int64](2, 4))).Msg("1/2 == 2/4")
	log.Info().Bool("less", a.LessThan(b)).Msg("1/2 < 3/4")
	log.Info().Bool("less", a.LessThanScalar(1)).Msg("1/2 < 1")
	log.Debug().Int64("cross", a.Cross(b)).Msg("cross product of a and b")

	section.Println("Utility functions")
	log.Info().Int64("gcd", fractions.GCD[int64](12, 8)).Msg("gcd(12, 8)")
	log.Info().Int64("lcm", fractions.LCM[int64](4, 6)).Msg("lcm(4, 6)")
	log.Info().Int64("abs", fractions.Abs[int64](-5)).Msg("abs(-5)")

	log.Info().Msg("demo completed")
}

package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/jhoicas/costo-promedio/internal/application/pricing"
	"github.com/jhoicas/costo-promedio/internal/domain"
)

// Códigos de salida del proceso.
const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

// Usage línea de ayuda que se imprime cuando faltan argumentos.
const Usage = "uso: costo-promedio <precio_unitario> <monto_compra>"

// Run ejecuta el cálculo sobre args (sin el nombre del programa) y devuelve el código de salida.
// El resultado va a stdout terminado en \r\n; los diagnósticos a stderr.
func Run(ctx context.Context, uc *pricing.PriceAveragerUseCase, args []string, stdout, stderr io.Writer) int {
	in, err := uc.ParseArgs(args)
	if err != nil {
		return fail(stderr, err)
	}
	out, err := uc.Average(ctx, in)
	if err != nil {
		return fail(stderr, err)
	}
	if _, err := fmt.Fprintf(stdout, "%s\r\n", out.AveragePrice); err != nil {
		return fail(stderr, err)
	}
	return ExitOK
}

func fail(stderr io.Writer, err error) int {
	fmt.Fprintf(stderr, "error: %v\n", err)
	if errors.Is(err, domain.ErrMissingArgument) {
		fmt.Fprintln(stderr, Usage)
		return ExitUsage
	}
	return ExitError
}

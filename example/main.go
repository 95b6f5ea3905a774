package main

import (
	"errors"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/theflywheel/chash"
	"github.com/theflywheel/chash/matrix"
	"github.com/theflywheel/chash/payload"
	"github.com/theflywheel/chash/rational"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))

	// A small variable store, as a matrix shell would keep one
	vars, err := chash.New(8, chash.WithLogger(logger))
	if err != nil {
		log.Fatalf("Failed to create table: %v", err)
	}
	defer vars.Close()

	fmt.Println("Variable table created")

	// Bind some rationals
	for i := int32(1); i <= 5; i++ {
		r, err := rational.Of(i, i+1)
		if err != nil {
			log.Fatalf("Failed to build rational: %v", err)
		}
		if err := vars.Add([]byte(fmt.Sprintf("r%d", i)), r); err != nil {
			log.Fatalf("Failed to bind r%d: %v", i, err)
		}
	}

	// And a matrix
	id, err := matrix.Identity(3)
	if err != nil {
		log.Fatalf("Failed to build matrix: %v", err)
	}
	if err := vars.Add([]byte("I"), id); err != nil {
		log.Fatalf("Failed to bind I: %v", err)
	}

	fmt.Printf("Bound %d of %d variables\n", vars.Len(), vars.Cap())

	// Look some up
	for _, name := range []string{"r1", "r4", "I", "missing"} {
		v, kind, ok := vars.Get([]byte(name))
		if !ok {
			fmt.Printf("%s is not bound\n", name)
			continue
		}
		switch kind {
		case payload.Rational:
			fmt.Printf("%s = %s\n", name, v.(*rational.Rational))
		case payload.Matrix:
			fmt.Printf("%s =\n%s", name, v.(*matrix.Matrix))
		}
	}

	// Rebind r1 to the sum of r1 and r2
	a, _, _ := vars.Get([]byte("r1"))
	b, _, _ := vars.Get([]byte("r2"))
	sum, err := a.(*rational.Rational).Add(b.(*rational.Rational))
	if err != nil {
		log.Fatalf("Failed to add: %v", err)
	}
	if err := vars.Add([]byte("r1"), sum); err != nil {
		log.Fatalf("Failed to rebind r1: %v", err)
	}
	v, _, _ := vars.Get([]byte("r1"))
	fmt.Printf("Updated r1 = %s\n", v.(*rational.Rational))

	// Fill the table and watch it refuse more
	for i := 0; ; i++ {
		err := vars.Add([]byte(fmt.Sprintf("t%d", i)), rational.New())
		if errors.Is(err, chash.ErrTableFull) {
			fmt.Printf("Table full after %d extra bindings\n", i)
			break
		}
		if err != nil {
			log.Fatalf("Unexpected error: %v", err)
		}
	}

	st := vars.Stats()
	fmt.Printf("Links=%d LongestChain=%d OwnedBytes=%d\n", st.Links, st.LongestChain, st.OwnedBytes)
	fmt.Println("Example completed successfully")
}

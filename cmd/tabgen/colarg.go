package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/mmrzaf/tabgen"
	"github.com/mmrzaf/tabgen/internal/timeutil"
)

// parseColArg declares one column on b from a --col argument.
//
// Grammar (colon-separated):
//
//	name:int:MIN:MAX[:null=N]
//	name:float:MIN:MAX[:null=N]
//	name:cat:A|B|C[:null=N]
//	name:date:MIN:MAX[:null=N]   MIN/MAX: YYYY-MM-DD, "now", or ±offset (-30d, +2w)
func parseColArg(b *tabgen.Builder, arg string, now time.Time) error {
	parts := strings.Split(arg, ":")

	var opts []tabgen.ColOption
	if last := parts[len(parts)-1]; strings.HasPrefix(last, "null=") {
		pct, err := strconv.Atoi(strings.TrimPrefix(last, "null="))
		if err != nil {
			return fmt.Errorf("column %q: invalid null percent %q", arg, last)
		}
		opts = append(opts, tabgen.Nullable(pct))
		parts = parts[:len(parts)-1]
	}

	if len(parts) < 2 {
		return fmt.Errorf("column %q: want name:kind:...", arg)
	}
	name, kind := parts[0], parts[1]
	rest := parts[2:]

	switch kind {
	case "int":
		if len(rest) != 2 {
			return fmt.Errorf("column %q: want %s:int:MIN:MAX", arg, name)
		}
		min, err := strconv.ParseInt(rest[0], 10, 64)
		if err != nil {
			return fmt.Errorf("column %q: invalid min %q", arg, rest[0])
		}
		max, err := strconv.ParseInt(rest[1], 10, 64)
		if err != nil {
			return fmt.Errorf("column %q: invalid max %q", arg, rest[1])
		}
		return b.AddIntCol(name, min, max, opts...)
	case "float":
		if len(rest) != 2 {
			return fmt.Errorf("column %q: want %s:float:MIN:MAX", arg, name)
		}
		min, err := strconv.ParseFloat(rest[0], 64)
		if err != nil {
			return fmt.Errorf("column %q: invalid min %q", arg, rest[0])
		}
		max, err := strconv.ParseFloat(rest[1], 64)
		if err != nil {
			return fmt.Errorf("column %q: invalid max %q", arg, rest[1])
		}
		return b.AddFloatCol(name, min, max, opts...)
	case "cat":
		if len(rest) != 1 {
			return fmt.Errorf("column %q: want %s:cat:A|B|C", arg, name)
		}
		categories := strings.Split(rest[0], "|")
		return b.AddCatCol(name, categories, opts...)
	case "date":
		if len(rest) != 2 {
			return fmt.Errorf("column %q: want %s:date:MIN:MAX", arg, name)
		}
		min, err := timeutil.ParseRelative(rest[0], now)
		if err != nil {
			return fmt.Errorf("column %q: %v", arg, err)
		}
		max, err := timeutil.ParseRelative(rest[1], now)
		if err != nil {
			return fmt.Errorf("column %q: %v", arg, err)
		}
		return b.AddDatetimeCol(name, min, max, opts...)
	default:
		return fmt.Errorf("column %q: unknown kind %q (want int|float|cat|date)", arg, kind)
	}
}

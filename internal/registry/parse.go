package registry

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"scheduling-simulator/internal/core"
)

const minFields = 3

// Parse reads one process per line: name,duration,arrival[,priority].
// Lines that cannot be turned into a process are skipped and reported as
// MalformedRecordError values; only read failures are returned as err.
func Parse(r io.Reader, algorithm core.Algorithm) (processes []core.Process, skipped []error, err error) {
	scanner := bufio.NewScanner(r)
	for line := 1; scanner.Scan(); line++ {
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}

		p, err := ParseLine(text, algorithm)
		if err != nil {
			skipped = append(skipped, &core.MalformedRecordError{Line: line, Text: text, Err: err})
			continue
		}
		p.ID = len(processes) + 1
		processes = append(processes, p)
	}
	if err := scanner.Err(); err != nil {
		return nil, skipped, fmt.Errorf("reading process list: %w", err)
	}
	return processes, skipped, nil
}

// ParseLine parses a single process given in the stored format.
func ParseLine(line string, algorithm core.Algorithm) (core.Process, error) {
	return ParseRecord(strings.Split(strings.TrimSpace(line), ","), algorithm)
}

func ParseRecord(fields []string, algorithm core.Algorithm) (core.Process, error) {
	if len(fields) < minFields {
		return core.Process{}, &core.InvalidProcessError{
			Field:  "record",
			Reason: fmt.Sprintf("has %d fields, want at least %d", len(fields), minFields),
		}
	}
	if len(fields) > minFields+1 {
		return core.Process{}, &core.InvalidProcessError{
			Field:  "record",
			Reason: fmt.Sprintf("has %d fields, want at most %d", len(fields), minFields+1),
		}
	}

	p := core.Process{Name: strings.TrimSpace(fields[0])}
	var err error
	if p.Duration, err = parseInt("duration", fields[1]); err != nil {
		return core.Process{}, err
	}
	if p.Arrival, err = parseInt("arrival", fields[2]); err != nil {
		return core.Process{}, err
	}
	if len(fields) > minFields {
		priority, err := parseInt("priority", fields[3])
		if err != nil {
			return core.Process{}, err
		}
		p.Priority = &priority
	}

	if err := p.Validate(algorithm.RequiresPriority()); err != nil {
		return core.Process{}, err
	}
	return p, nil
}

func parseInt(field, value string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, &core.InvalidProcessError{Field: field, Reason: fmt.Sprintf("%q is not an integer", value)}
	}
	return n, nil
}

// FormatRecord renders p as a single stored line. The priority column is only
// written for algorithms that use it.
func FormatRecord(p core.Process, algorithm core.Algorithm) ([]byte, error) {
	if strings.ContainsAny(p.Name, ",\r\n") {
		return nil, &core.InvalidProcessError{Field: "name", Reason: fmt.Sprintf("%q must not contain commas or line breaks", p.Name)}
	}

	fields := []string{p.Name, strconv.Itoa(p.Duration), strconv.Itoa(p.Arrival)}
	if algorithm.RequiresPriority() && p.Priority != nil {
		fields = append(fields, strconv.Itoa(*p.Priority))
	}
	return []byte(strings.Join(fields, ",") + "\n"), nil
}

package main

import (
	"fmt"
	"strings"
)

type versionCmd struct{ r *root }

func (v *versionCmd) Run() error {
	fmt.Println(versionString(v.r.program))
	return nil
}

func versionString(program string) string {
	parts := []string{fmt.Sprintf("%s version %s", program, version)}
	if c := strings.TrimSpace(commit); c != "" {
		parts = append(parts, "commit "+c)
	}
	if d := strings.TrimSpace(date); d != "" {
		parts = append(parts, "built "+d)
	}
	return strings.Join(parts, ", ")
}

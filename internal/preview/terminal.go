package preview

import (
	"io"
	"strings"

	"github.com/jmylchreest/okbase16/internal/colour"
	"github.com/jmylchreest/okbase16/internal/plugin/output"
)

// span is a piece of text in one slot colour.
type span struct {
	slot colour.Slot
	text string
	bold bool
}

func prompt(cmd string) []span {
	return []span{
		{slot: colour.Base0B, text: "user@hostname"},
		{slot: colour.Base05, text: ":"},
		{slot: colour.Base0D, text: "~"},
		{slot: colour.Base05, text: "$ " + cmd},
	}
}

func info(key, value string) []span {
	return []span{
		{slot: colour.Base0D, text: key + ":"},
		{slot: colour.Base05, text: " " + value},
	}
}

func listing(mode, owner, size, date, name string, nameSlot colour.Slot, bold bool) []span {
	modeSlot := colour.Base05
	switch mode[0] {
	case 'd':
		modeSlot = colour.Base0D
	case 'l':
		modeSlot = colour.Base0C
	}
	if strings.Contains(mode[1:4], "x") && mode[0] == '-' {
		modeSlot = colour.Base0B
	}
	return []span{
		{slot: modeSlot, text: mode},
		{slot: colour.Base05, text: " " + owner + " "},
		{slot: colour.Base09, text: size},
		{slot: colour.Base05, text: " " + date + " "},
		{slot: nameSlot, text: name, bold: bold},
	}
}

// terminalSession is the sample shown by Terminal: a prompt, system
// information, a directory listing and a few log lines.
func terminalSession() [][]span {
	return [][]span{
		prompt("fetch"),
		{{slot: colour.Base0B, text: "user"}, {slot: colour.Base05, text: "@"}, {slot: colour.Base0B, text: "hostname"}},
		{{slot: colour.Base03, text: "-----------------"}},
		info("OS", "Arch Linux x86_64"),
		info("Kernel", "6.6.10-arch1-1"),
		info("Shell", "zsh 5.9"),
		info("Terminal", "kitty"),
		nil,
		prompt("ls -la"),
		listing("drwxr-xr-x", "12 user user", "4096", "Jan 15 10:30", ".", colour.Base0D, false),
		listing("drwxr-xr-x", "24 root root", "4096", "Jan 10 08:15", "..", colour.Base0D, false),
		listing("-rw-r--r--", " 1 user user", " 220", "Jan 01 12:00", ".bash_logout", colour.Base03, false),
		listing("drwxr-xr-x", " 3 user user", "4096", "Jan 14 15:22", ".config", colour.Base0D, true),
		listing("-rw-r--r--", " 1 user user", "1024", "Jan 15 09:45", "notes.txt", colour.Base05, false),
		listing("-rwxr-xr-x", " 1 user user", "8192", "Jan 15 11:02", "build.sh", colour.Base0B, true),
		listing("lrwxrwxrwx", " 1 user user", "  11", "Jan 12 17:40", "current -> releases/3", colour.Base0C, false),
		nil,
		prompt("make test"),
		{{slot: colour.Base0B, text: "PASS"}, {slot: colour.Base05, text: " ok  okbase16/internal/colour  0.012s"}},
		{{slot: colour.Base0A, text: "WARN"}, {slot: colour.Base05, text: " deprecated flag --legacy"}},
		{{slot: colour.Base08, text: "FAIL"}, {slot: colour.Base05, text: " okbase16/internal/cli  0.104s"}},
		{{slot: colour.Base0F, text: "NOTE"}, {slot: colour.Base04, text: " rerun with -v for details"}},
	}
}

// Terminal writes a shell session drawn with the scheme's terminal roles,
// followed by a strip of the accent colours.
func Terminal(w io.Writer, theme *output.Theme, opts Options) error {
	p := newPainter(w, theme, opts)
	var b strings.Builder
	for _, line := range terminalSession() {
		for _, s := range line {
			if s.bold {
				b.WriteString(p.bold(s.slot, s.text))
			} else {
				b.WriteString(p.fg(s.slot, s.text))
			}
		}
		b.WriteByte('\n')
	}

	for _, slot := range colour.AccentSlots() {
		b.WriteString(p.block(slot, 4))
	}
	b.WriteByte('\n')

	_, err := io.WriteString(w, b.String())
	return err
}

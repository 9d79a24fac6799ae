package preview

import (
	"sort"
	"strings"
)

// Snippet is a sample source file shown by Code.
type Snippet struct {
	// Language is the name used on the command line.
	Language string
	// Title is shown above the sample.
	Title string
	// Lexer is the chroma lexer name.
	Lexer  string
	Source string
}

var snippets = map[string]Snippet{
	"go": {Language: "go", Title: "Go", Lexer: "go", Source: `// Package cache keeps recently used values.
package cache

import (
	"errors"
	"sync"
	"time"
)

// ErrMissing is returned for keys that were never stored.
var ErrMissing = errors.New("cache: missing key")

const defaultTTL = 5 * time.Minute

type entry struct {
	value   []byte
	expires time.Time
}

// Cache is safe for concurrent use.
type Cache struct {
	mu      sync.Mutex
	entries map[string]entry
}

func (c *Cache) Get(key string) ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok || time.Now().After(e.expires) {
		return nil, ErrMissing
	}
	return e.value, nil
}

func (c *Cache) Put(key string, value []byte) {
	c.mu.Lock()
	c.entries[key] = entry{value: value, expires: time.Now().Add(defaultTTL)}
	c.mu.Unlock()
}
`},
	"python": {Language: "python", Title: "Python", Lexer: "python", Source: `# Inventory report
from dataclasses import dataclass
import re

SKU_PATTERN = re.compile(r"^[A-Z]{3}-\d{4}$")


@dataclass
class Item:
    sku: str
    count: int = 0
    price: float = 9.99

    def total(self) -> float:
        return self.count * self.price


def load(lines):
    """Parse 'SKU count' lines, skipping bad rows."""
    for line in lines:
        sku, _, count = line.partition(" ")
        if not SKU_PATTERN.match(sku):
            print(f"skipping {sku!r}")
            continue
        yield Item(sku, int(count))


if __name__ == "__main__":
    items = list(load(["ABC-1234 3", "bad 1"]))
    print(sum(item.total() for item in items), None, True)
`},
	"rust": {Language: "rust", Title: "Rust", Lexer: "rust", Source: `// Rolling average over a fixed window
use std::collections::VecDeque;

#[derive(Debug, Default)]
pub struct Window {
    samples: VecDeque<f64>,
    size: usize,
}

impl Window {
    pub fn new(size: usize) -> Self {
        Self { samples: VecDeque::with_capacity(size), size }
    }

    pub fn push(&mut self, value: f64) -> Option<f64> {
        if self.samples.len() == self.size {
            self.samples.pop_front();
        }
        self.samples.push_back(value);
        self.mean()
    }

    fn mean(&self) -> Option<f64> {
        match self.samples.len() {
            0 => None,
            n => Some(self.samples.iter().sum::<f64>() / n as f64),
        }
    }
}

fn main() {
    let mut w = Window::new(3);
    for v in [1.0, 2.5, 4.0, 8.0] {
        println!("{:?}", w.push(v));
    }
}
`},
	"javascript": {Language: "javascript", Title: "TypeScript", Lexer: "typescript", Source: `// Debounced search box
interface Result {
  id: number;
  title: string;
  score?: number;
}

const DELAY_MS = 250;

export class Search {
  private timer: ReturnType<typeof setTimeout> | null = null;

  constructor(private readonly endpoint: string) {}

  async query(term: string): Promise<Result[]> {
    const url = ` + "`${this.endpoint}?q=${encodeURIComponent(term)}`" + `;
    const res = await fetch(url);
    if (!res.ok) {
      throw new Error(` + "`search failed: ${res.status}`" + `);
    }
    return (await res.json()) as Result[];
  }

  debounce(term: string, done: (r: Result[]) => void): void {
    if (this.timer) clearTimeout(this.timer);
    this.timer = setTimeout(() => this.query(term).then(done), DELAY_MS);
  }
}
`},
	"cpp": {Language: "cpp", Title: "C++", Lexer: "c++", Source: `// Ring buffer
#include <array>
#include <cstddef>
#include <iostream>

template <typename T, std::size_t N>
class Ring {
public:
    bool push(const T& value) {
        if (count_ == N) {
            return false;
        }
        items_[(head_ + count_++) % N] = value;
        return true;
    }

    T pop() {
        T value = items_[head_];
        head_ = (head_ + 1) % N;
        --count_;
        return value;
    }

private:
    std::array<T, N> items_{};
    std::size_t head_ = 0;
    std::size_t count_ = 0;
};

int main() {
    Ring<int, 4> ring;
    ring.push(42);
    std::cout << "popped " << ring.pop() << '\n';
    return 0;
}
`},
	"html": {Language: "html", Title: "HTML/CSS", Lexer: "html", Source: `<!-- Status page -->
<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <title>Service status</title>
  <style>
    :root { --ok: #3fb950; }
    .card {
      padding: 1.5rem;
      border-radius: 6px;
      border: 1px solid rgba(0, 0, 0, 0.2);
    }
    @media (max-width: 600px) {
      .card { padding: 0.75rem; }
    }
  </style>
</head>
<body>
  <main class="card" id="status">
    <h1>All systems operational</h1>
    <a href="/history">View history</a>
  </main>
</body>
</html>
`},
	"nix": {Language: "nix", Title: "Nix", Lexer: "nix", Source: `# Development shell
{ pkgs ? import <nixpkgs> { } }:

let
  goVersion = "1.25";
  tools = with pkgs; [ gopls golangci-lint delve ];
in
pkgs.mkShell {
  name = "okbase16-dev";
  packages = [ pkgs.go ] ++ tools;

  shellHook = ''
    echo "go ${goVersion} shell"
    export CGO_ENABLED=0
  '';

  meta = {
    description = "Editor for OKLCH base16 schemes";
    broken = false;
  };
}
`},
}

// Languages returns the sample languages, sorted.
func Languages() []string {
	names := make([]string, 0, len(snippets))
	for name := range snippets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LookupSnippet returns the sample for lang. "ts", "typescript" and "js" are
// accepted for javascript, and "c++" for cpp.
func LookupSnippet(lang string) (Snippet, bool) {
	lang = strings.ToLower(strings.TrimSpace(lang))
	switch lang {
	case "js", "ts", "typescript":
		lang = "javascript"
	case "c++":
		lang = "cpp"
	case "golang":
		lang = "go"
	}
	s, ok := snippets[lang]
	return s, ok
}

package internal

import (
	"fmt"
	"sort"
)

// predefinedSymbols are the names the hack platform reserves. KBD is the keyboard memory map.
var predefinedSymbols = map[string]uint16{
	"SP":     0,
	"LCL":    1,
	"ARG":    2,
	"THIS":   3,
	"THAT":   4,
	"SCREEN": 0x4000,
	"KBD":    0x6000,
}

const registerCount = 16

// SymbolTable maps symbols to addresses. A name, once bound, keeps its value for the table's lifetime.
type SymbolTable struct {
	entries map[string]uint16
}

type SymbolEntry struct {
	Name  string
	Value uint16
}

func (entry SymbolEntry) String() string {
	return fmt.Sprintf("%s=%d", entry.Name, entry.Value)
}

// NewSymbolTable returns a table holding the predefined symbols and R0..R15.
func NewSymbolTable() *SymbolTable {
	table := &SymbolTable{entries: make(map[string]uint16, len(predefinedSymbols)+registerCount)}
	for name, value := range predefinedSymbols {
		table.AddEntry(name, value)
	}
	for i := 0; i < registerCount; i++ {
		table.AddEntry(fmt.Sprintf("R%d", i), uint16(i))
	}
	return table
}

// AddEntry binds name to value unless name is already bound, in which case it is a no-op. It reports whether the
// binding was added.
func (table *SymbolTable) AddEntry(name string, value uint16) bool {
	if _, exist := table.entries[name]; exist {
		return false
	}
	table.entries[name] = value
	return true
}

func (table *SymbolTable) Contains(name string) bool {
	_, exist := table.entries[name]
	return exist
}

// GetValue returns the value bound to name or an *UnknownSymbolError.
func (table *SymbolTable) GetValue(name string) (uint16, error) {
	value, exist := table.entries[name]
	if !exist {
		return 0, &UnknownSymbolError{Symbol: name}
	}
	return value, nil
}

func (table *SymbolTable) Len() int {
	return len(table.entries)
}

// Symbols returns a snapshot of all entries ordered by value, then name.
func (table *SymbolTable) Symbols() []SymbolEntry {
	ret := make([]SymbolEntry, 0, len(table.entries))
	for name, value := range table.entries {
		ret = append(ret, SymbolEntry{Name: name, Value: value})
	}
	sort.Slice(ret, func(i, j int) bool {
		if ret[i].Value != ret[j].Value {
			return ret[i].Value < ret[j].Value
		}
		return ret[i].Name < ret[j].Name
	})
	return ret
}

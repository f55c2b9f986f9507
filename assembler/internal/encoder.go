package internal

import (
	"strconv"
	"strings"

	"tlog.app/go/errors"
)

// An A instruction is 0vvvvvvvvvvvvvvv, a C instruction is 111accccccdddjjj.

// compEntry is one ALU operation. The a bit selects M instead of A as the second operand, so every operation that
// reads A has an M twin with the same c bits.
type compEntry struct {
	aForm string
	mForm string
	cBits string
}

var compEntries = []compEntry{
	{aForm: "0", cBits: "101010"},
	{aForm: "1", cBits: "111111"},
	{aForm: "-1", cBits: "111010"},
	{aForm: "D", cBits: "001100"},
	{aForm: "A", mForm: "M", cBits: "110000"},
	{aForm: "!D", cBits: "001101"},
	{aForm: "!A", mForm: "!M", cBits: "110001"},
	{aForm: "-D", cBits: "001111"},
	{aForm: "-A", mForm: "-M", cBits: "110011"},
	{aForm: "D+1", cBits: "011111"},
	{aForm: "A+1", mForm: "M+1", cBits: "110111"},
	{aForm: "D-1", cBits: "001110"},
	{aForm: "A-1", mForm: "M-1", cBits: "110010"},
	{aForm: "D+A", mForm: "D+M", cBits: "000010"},
	{aForm: "D-A", mForm: "D-M", cBits: "010011"},
	{aForm: "A-D", mForm: "M-D", cBits: "000111"},
	{aForm: "D&A", mForm: "D&M", cBits: "000000"},
	{aForm: "D|A", mForm: "D|M", cBits: "010101"},
}

var cCommandCompMap = buildCompMap(compEntries)

func buildCompMap(entries []compEntry) map[string]string {
	ret := make(map[string]string, 2*len(entries))
	for _, entry := range entries {
		ret[entry.aForm] = "0" + entry.cBits
		if entry.mForm != "" {
			ret[entry.mForm] = "1" + entry.cBits
		}
	}
	return ret
}

var cCommandDestMap = map[string]string{
	"M":   "001",
	"D":   "010",
	"MD":  "011",
	"A":   "100",
	"AM":  "101",
	"AD":  "110",
	"AMD": "111",
}

var cCommandJumpMap = map[string]string{
	"JGT": "001",
	"JEQ": "010",
	"JGE": "011",
	"JLT": "100",
	"JNE": "101",
	"JLE": "110",
	"JMP": "111",
}

const (
	noDest = "000"
	noJump = "000"
	// maxConstant is the largest value an A instruction can carry; the top bit is the opcode.
	maxConstant = 1<<15 - 1
)

// EncodeACommand encodes an A command. Symbols are resolved through table, which must already hold them.
func EncodeACommand(command Command, table *SymbolTable) (string, error) {
	if command.IsSymbolic() {
		value, err := table.GetValue(command.Text)
		if err != nil {
			return "", err
		}
		if value > maxConstant {
			return "", errors.New("symbol %s value %d out of range 0..%d", command.Text, value, maxConstant)
		}
		return formatCode(value), nil
	}
	value, err := strconv.ParseUint(command.Text, 10, 16)
	if err != nil || value > maxConstant {
		return "", errors.New("constant %s out of range 0..%d", command.Text, maxConstant)
	}
	return formatCode(uint16(value)), nil
}

// EncodeCCommand encodes a C command of the form dest=comp, comp;jump or dest=comp;jump.
func EncodeCCommand(command Command) (string, error) {
	if command.Trailer != "" && !strings.HasPrefix(command.Trailer, "//") {
		return "", errors.New("comment format not correct")
	}
	line := command.Text
	equals := strings.IndexByte(line, '=')
	semicolon := strings.IndexByte(line, ';')

	var dest, comp, jump string
	switch {
	case equals == -1 && semicolon == -1:
		return "", errors.New("c command %s needs a dest or a jump", line)
	case semicolon == -1:
		dest, comp = line[:equals], line[equals+1:]
	case equals == -1:
		comp, jump = line[:semicolon], line[semicolon+1:]
	case equals < semicolon:
		dest, comp, jump = line[:equals], line[equals+1:semicolon], line[semicolon+1:]
	default:
		return "", errors.New("wrong c command format near %s", line)
	}

	destCodeStr, err := parseCCommandDestCode(dest, equals != -1)
	if err != nil {
		return "", err
	}
	compCodeStr, exist := cCommandCompMap[comp]
	if !exist {
		return "", errors.New("wrong c command of comp code format near %s", line)
	}
	jumpCodeStr, err := parseCCommandJumpCode(jump, semicolon != -1)
	if err != nil {
		return "", err
	}
	return "111" + compCodeStr + destCodeStr + jumpCodeStr, nil
}

func parseCCommandDestCode(dest string, present bool) (string, error) {
	if !present {
		return noDest, nil
	}
	code, exist := cCommandDestMap[dest]
	if !exist {
		return "", errors.New("wrong c command of dest code format near %s", dest)
	}
	return code, nil
}

func parseCCommandJumpCode(jump string, present bool) (string, error) {
	if !present {
		return noJump, nil
	}
	code, exist := cCommandJumpMap[jump]
	if !exist {
		return "", errors.New("wrong c command of jump code format near %s", jump)
	}
	return code, nil
}

// formatCode transfers value to its 16 character binary form, MSB first.
func formatCode(value uint16) string {
	var code [16]byte
	for j := 15; j >= 0; j-- {
		code[j] = byte(value&1) + '0'
		value >>= 1
	}
	return string(code[:])
}

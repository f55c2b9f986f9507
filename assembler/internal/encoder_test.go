package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatCode(t *testing.T) {
	testData := []struct {
		value uint16
		code  string
	}{
		{0, "0000000000000000"},
		{1, "0000000000000001"},
		{2, "0000000000000010"},
		{16384, "0100000000000000"},
		{32767, "0111111111111111"},
		{65535, "1111111111111111"},
	}
	for _, data := range testData {
		assert.Equal(t, data.code, formatCode(data.value))
	}
}

func TestEncodeACommand(t *testing.T) {
	table := NewSymbolTable()
	table.AddEntry("LOOP", 10)
	testData := []struct {
		line string
		code string
	}{
		{"@0", "0000000000000000"},
		{"@10", "0000000000001010"},
		{"@007", "0000000000000111"},
		{"@32767", "0111111111111111"},
		{"@SCREEN", "0100000000000000"},
		{"@KBD", "0110000000000000"},
		{"@R15", "0000000000001111"},
		{"@LOOP", "0000000000001010"},
	}
	for _, data := range testData {
		code, err := EncodeACommand(Classify(data.line), table)
		require.NoError(t, err, data.line)
		assert.Equal(t, data.code, code, data.line)
	}
}

func TestEncodeACommandErrors(t *testing.T) {
	table := NewSymbolTable()
	_, err := EncodeACommand(Classify("@32768"), table)
	assert.Error(t, err)
	_, err = EncodeACommand(Classify("@99999999999999999999"), table)
	assert.Error(t, err)

	_, err = EncodeACommand(Classify("@unbound"), table)
	var unknown *UnknownSymbolError
	assert.ErrorAs(t, err, &unknown)
}

func TestEncodeCCommand(t *testing.T) {
	type code struct {
		assembleCode string
		binaryCode   string
	}
	dest := []code{
		{assembleCode: "", binaryCode: "000"},
		{assembleCode: "M", binaryCode: "001"},
		{assembleCode: "D", binaryCode: "010"},
		{assembleCode: "MD", binaryCode: "011"},
		{assembleCode: "A", binaryCode: "100"},
		{assembleCode: "AM", binaryCode: "101"},
		{assembleCode: "AD", binaryCode: "110"},
		{assembleCode: "AMD", binaryCode: "111"},
	}
	comp := []code{
		{assembleCode: "0", binaryCode: "0101010"},
		{assembleCode: "1", binaryCode: "0111111"},
		{assembleCode: "-1", binaryCode: "0111010"},
		{assembleCode: "D", binaryCode: "0001100"},
		{assembleCode: "A", binaryCode: "0110000"},
		{assembleCode: "!D", binaryCode: "0001101"},
		{assembleCode: "!A", binaryCode: "0110001"},
		{assembleCode: "-D", binaryCode: "0001111"},
		{assembleCode: "-A", binaryCode: "0110011"},
		{assembleCode: "D+1", binaryCode: "0011111"},
		{assembleCode: "A+1", binaryCode: "0110111"},
		{assembleCode: "D-1", binaryCode: "0001110"},
		{assembleCode: "A-1", binaryCode: "0110010"},
		{assembleCode: "D+A", binaryCode: "0000010"},
		{assembleCode: "D-A", binaryCode: "0010011"},
		{assembleCode: "A-D", binaryCode: "0000111"},
		{assembleCode: "D&A", binaryCode: "0000000"},
		{assembleCode: "D|A", binaryCode: "0010101"},

		{assembleCode: "M", binaryCode: "1110000"},
		{assembleCode: "!M", binaryCode: "1110001"},
		{assembleCode: "-M", binaryCode: "1110011"},
		{assembleCode: "M+1", binaryCode: "1110111"},
		{assembleCode: "M-1", binaryCode: "1110010"},
		{assembleCode: "D+M", binaryCode: "1000010"},
		{assembleCode: "D-M", binaryCode: "1010011"},
		{assembleCode: "M-D", binaryCode: "1000111"},
		{assembleCode: "D&M", binaryCode: "1000000"},
		{assembleCode: "D|M", binaryCode: "1010101"},
	}
	jump := []code{
		{assembleCode: "", binaryCode: "000"},
		{assembleCode: "JGT", binaryCode: "001"},
		{assembleCode: "JEQ", binaryCode: "010"},
		{assembleCode: "JGE", binaryCode: "011"},
		{assembleCode: "JLT", binaryCode: "100"},
		{assembleCode: "JNE", binaryCode: "101"},
		{assembleCode: "JLE", binaryCode: "110"},
		{assembleCode: "JMP", binaryCode: "111"},
	}
	assert.Len(t, cCommandCompMap, len(comp))
	preCode := "111"
	for _, destCode := range dest {
		temp1 := destCode.assembleCode
		if temp1 != "" {
			temp1 = temp1 + "="
		}
		for _, compCode := range comp {
			temp2 := temp1 + compCode.assembleCode
			for _, jumpCode := range jump {
				temp3 := temp2
				if jumpCode.assembleCode != "" {
					temp3 = temp3 + ";" + jumpCode.assembleCode
				}
				if destCode.assembleCode == "" && jumpCode.assembleCode == "" {
					continue
				}
				command := Classify(temp3)
				require.Equal(t, CCommand, command.Tp, temp3)
				code, err := EncodeCCommand(command)
				require.NoError(t, err, temp3)
				assert.Equal(t, preCode+compCode.binaryCode+destCode.binaryCode+jumpCode.binaryCode, code, temp3)
			}
		}
	}
}

func TestEncodeCCommandErrors(t *testing.T) {
	for _, line := range []string{
		"D",        // neither dest nor jump
		"0",        // neither dest nor jump
		"D=X",      // unknown comp
		"M=M+D",    // only canonical operand order
		"DM=A",     // only canonical dest order
		"D;",       // empty jump
		"D;JMPX",   // unknown jump
		"A=D;JZZ",  // unknown jump with dest
		"0;JMP=D",  // ';' before '='
		"D=A/",     // lone comment marker
		"0;JMP/x",  // lone comment marker after jump
		"D=D+A;/",  // empty jump before comment marker
		"M=1;JMP;", // unknown jump
	} {
		command := Classify(line)
		require.Equal(t, CCommand, command.Tp, line)
		_, err := EncodeCCommand(command)
		assert.Error(t, err, line)
	}
}

func TestEncodeCCommandWithComment(t *testing.T) {
	code, err := EncodeCCommand(Classify("D=A // load"))
	require.NoError(t, err)
	assert.Equal(t, "1110110000010000", code)

	code, err = EncodeCCommand(Classify("0;JMP//"))
	require.NoError(t, err)
	assert.Equal(t, "1110101010000111", code)
}

func TestEncodeACommandSymbolOutOfRange(t *testing.T) {
	table := NewSymbolTable()
	table.AddEntry("far", 32768)
	table.AddEntry("edge", 32767)

	_, err := EncodeACommand(Classify("@far"), table)
	assert.Error(t, err)

	code, err := EncodeACommand(Classify("@edge"), table)
	require.NoError(t, err)
	assert.Equal(t, "0111111111111111", code)
}

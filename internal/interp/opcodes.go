package interp

// Opcode byte values, JVMS §6.5 numbering. Only the mnemonics this
// interpreter dispatches on are named; everything else is handled as a
// byte value directly (spec's Non-goals: "implementing the 200+ opcodes
// not listed").
const (
	opNop         = 0
	opAconstNull  = 1
	opIconstM1    = 2
	opIconst0     = 3
	opIconst5     = 8
	opLconst0     = 9
	opLconst1     = 10
	opFconst0     = 11
	opFconst2     = 13
	opDconst0     = 14
	opDconst1     = 15
	opBipush      = 16
	opSipush      = 17
	opLdc         = 18
	opLdcW        = 19
	opLdc2W       = 20

	opIload  = 21
	opLload  = 22
	opFload  = 23
	opDload  = 24
	opAload  = 25
	opIload0 = 26
	opLload0 = 30
	opFload0 = 34
	opDload0 = 38
	opAload0 = 42
	opIaload = 46
	opLaload = 47
	opFaload = 48
	opDaload = 49
	opAaload = 50
	opBaload = 51
	opCaload = 52
	opSaload = 53

	opIstore  = 54
	opLstore  = 55
	opFstore  = 56
	opDstore  = 57
	opAstore  = 58
	opIstore0 = 59
	opLstore0 = 63
	opFstore0 = 67
	opDstore0 = 71
	opAstore0 = 75
	opIastore = 79
	opLastore = 80
	opFastore = 81
	opDastore = 82
	opAastore = 83
	opBastore = 84
	opCastore = 85
	opSastore = 86

	opPop    = 87
	opPop2   = 88
	opDup    = 89
	opDupX1  = 90
	opDupX2  = 91
	opDup2   = 92
	opDup2X1 = 93
	opDup2X2 = 94
	opSwap   = 95

	opIadd = 96
	opLadd = 97
	opFadd = 98
	opDadd = 99
	opIsub = 100
	opLsub = 101
	opFsub = 102
	opDsub = 103
	opImul = 104
	opLmul = 105
	opFmul = 106
	opDmul = 107
	opIdiv = 108
	opLdiv = 109
	opFdiv = 110
	opDdiv = 111
	opIrem = 112
	opLrem = 113
	opFrem = 114
	opDrem = 115
	opIneg = 116
	opLneg = 117
	opFneg = 118
	opDneg = 119
	opIshl  = 120
	opLshl  = 121
	opIshr  = 122
	opLshr  = 123
	opIushr = 124
	opLushr = 125
	opIand = 126
	opLand = 127
	opIor  = 128
	opLor  = 129
	opIxor = 130
	opLxor = 131
	opIinc = 132

	opI2l = 133
	opI2f = 134
	opI2d = 135
	opL2i = 136
	opL2f = 137
	opL2d = 138
	opF2i = 139
	opF2l = 140
	opF2d = 141
	opD2i = 142
	opD2l = 143
	opD2f = 144
	opI2b = 145
	opI2c = 146
	opI2s = 147

	opLcmp     = 148
	opFcmpl    = 149
	opFcmpg    = 150
	opDcmpl    = 151
	opDcmpg    = 152
	opIfeq     = 153
	opIfne     = 154
	opIflt     = 155
	opIfge     = 156
	opIfgt     = 157
	opIfle     = 158
	opIfIcmpeq = 159
	opIfIcmpne = 160
	opIfIcmplt = 161
	opIfIcmpge = 162
	opIfIcmpgt = 163
	opIfIcmple = 164
	opIfAcmpeq = 165
	opIfAcmpne = 166

	opGoto        = 167
	opJsr         = 168
	opRet         = 169
	opTableswitch = 170
	opLookupswitch = 171
	opIreturn = 172
	opLreturn = 173
	opFreturn = 174
	opDreturn = 175
	opAreturn = 176
	opReturn  = 177

	opGetstatic = 178
	opPutstatic = 179
	opGetfield  = 180
	opPutfield  = 181
)

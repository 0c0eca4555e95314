package calldata

import (
	"fmt"
	"strings"
)

// word left-pads n to a full 32-byte word.
func word(n uint64) string {
	return fmt.Sprintf("%064x", n)
}

const (
	recipientWord = "0000000000000000000000004d278b35b4fa66e7dc694197826abf76240533af"
	amountWord    = "00000000000000000000000000000000000000000000000005f7aab8c56b0000"
	wethWord      = "000000000000000000000000c02aaa39b223fe8d0a0e5c4f27ead9083c756cc2"
	allowanceWord = "0000000000000000000000000000000000000000000000000000000000002710"

	// transfer(address,uint256)
	erc20TransferCalldata = "0xa9059cbb" + recipientWord + amountWord
)

var (
	transferCall = "a9059cbb" + recipientWord + amountWord
	approveCall  = "095ea7b3" + wethWord + allowanceWord

	// Two calls packed back to back, each behind a one-word byte length, with no padding.
	packedMultiSendCalldata = "0x8d80ff0a" + word(0x44) + transferCall + word(0x44) + approveCall
)

// uniswapMulticallCalldata is multicall(bytes[]) with two calls, the first of which is
// padded to a whole number of words.
var uniswapMulticallCalldata = strings.Join([]string{
	"0xac9650d8",
	"0000000000000000000000000000000000000000000000000000000000000020",
	"0000000000000000000000000000000000000000000000000000000000000002",
	"0000000000000000000000000000000000000000000000000000000000000040",
	"00000000000000000000000000000000000000000000000000000000000001e0",
	"0000000000000000000000000000000000000000000000000000000000000164",
	"88316456000000000000000000000000c011a73ee8576fb46f5e1c5751ca3b9f",
	"e0af2a6f000000000000000000000000c02aaa39b223fe8d0a0e5c4f27ead908",
	"3c756cc200000000000000000000000000000000000000000000000000000000",
	"00002710ffffffffffffffffffffffffffffffffffffffffffffffffffffffff",
	"fffee530ffffffffffffffffffffffffffffffffffffffffffffffffffffffff",
	"ffff1b1800000000000000000000000000000000000000000000000001634578",
	"5d89fd6800000000000000000000000000000000000000000000000000007f73",
	"eca3063a000000000000000000000000000000000000000000000000016042b5",
	"30ddaec600000000000000000000000000000000000000000000000000007e59",
	"f044bada000000000000000000000000f847e9d51989033b691b8be943f8e9e2",
	"68f99b9e00000000000000000000000000000000000000000000000000000000",
	"6377347700000000000000000000000000000000000000000000000000000000",
	"0000000000000000000000000000000000000000000000000000000000000004",
	"12210e8a00000000000000000000000000000000000000000000000000000000",
}, "")

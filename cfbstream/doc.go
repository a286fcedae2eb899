/*
Package cfbstream implements cipher feedback mode with an 8-bit feedback
register (CFB-8) over an arbitrary block cipher.

Each byte of input costs one block encryption: the register is encrypted, the
first byte of the result is XORed with the input byte, and the ciphertext byte
is shifted into the tail of the register. This makes the stream self
synchronizing and independent of the block size, so a buffer of any length
(including a single byte) can be processed, and back-to-back calls continue the
same running state.

Only the first BlockSize bytes of the IV are used.
*/
package cfbstream

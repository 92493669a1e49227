/*

Package ice is a decoder/encoder for ICE archives, a container format used
to package game assets into two file groups ("group 1" and "group 2") with
optional Kraken or PRS compression and optional Blowfish+floatage
encryption.

This is not a full implementation of every archive variant observed in the
wild; version 3 and version 4 archives are supported. Versions 5-9 are
recognized during header dispatch but not implemented.

*/
package ice

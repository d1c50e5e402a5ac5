// Package nemkit provides a Go client SDK for NEM-lineage blockchain networks.
//
// The root package contains ledger-level value objects such as [MosaicId],
// the compound identifier for a ledger asset type. The low-level symmetric
// primitives used by wallets and signers (key derivation, hashing, MACs,
// checksums) live in the crypto subpackage.
//
// Basic usage:
//
//	mosaic := nemkit.MosaicId{NamespaceID: "nem", Name: "xem"}
//	fmt.Println(mosaic.QualifiedName()) // "nem:xem"
//
// Deriving a wallet key from a password:
//
//	password := crypto.NewByteBuffer([]byte("correcthorse"))
//	salt := crypto.NewByteBuffer([]byte("saltsaltsalt"))
//	key, err := crypto.DeriveKey(crypto.SHA256, password, salt)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(key.Hex())
package nemkit

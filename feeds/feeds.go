// Copyright 2026 The Mellium Contributors.
// Use of this source code is governed by the BSD 2-clause
// license that can be found in the LICENSE file.

// Package feeds contains the documents exchanged with the MWS Feeds API: feed
// envelopes that are uploaded with SubmitFeed and the responses returned by
// SubmitFeed and GetFeedSubmissionList.
package feeds // import "github.com/Ventmere/mws-go/feeds"

import (
	"fmt"
)

// FeedType identifies the kind of data in a submitted feed.
type FeedType string

// A list of feed types available through the Feeds API.
const (
	FeedProduct                        FeedType = "_POST_PRODUCT_DATA_"
	FeedInventory                      FeedType = "_POST_INVENTORY_AVAILABILITY_DATA_"
	FeedOverrides                      FeedType = "_POST_PRODUCT_OVERRIDES_DATA_"
	FeedPricing                        FeedType = "_POST_PRODUCT_PRICING_DATA_"
	FeedProductImages                  FeedType = "_POST_PRODUCT_IMAGE_DATA_"
	FeedRelationships                  FeedType = "_POST_PRODUCT_RELATIONSHIP_DATA_"
	FeedFlatFileInventoryLoader        FeedType = "_POST_FLAT_FILE_INVLOADER_DATA_"
	FeedFlatFileListings               FeedType = "_POST_FLAT_FILE_LISTINGS_DATA_"
	FeedFlatFileBookLoader             FeedType = "_POST_FLAT_FILE_BOOKLOADER_DATA_"
	FeedFlatFileMusicLoader            FeedType = "_POST_FLAT_FILE_CONVERGENCE_LISTINGS_DATA_"
	FeedFlatFilePriceAndQuantityUpdate FeedType = "_POST_FLAT_FILE_PRICEANDQUANTITYONLY_UPDATE_DATA_"
	FeedUIEEInventory                  FeedType = "_POST_UIEE_BOOKLOADER_DATA_"
	FeedAutomotivePartFinder           FeedType = "_POST_STD_ACES_DATA_"
)

// FeedProcessingStatus is the processing state of a submitted feed.
type FeedProcessingStatus string

// A list of feed processing states.
const (
	StatusAwaitingAsynchronousReply FeedProcessingStatus = "_AWAITING_ASYNCHRONOUS_REPLY_"
	StatusCancelled                 FeedProcessingStatus = "_CANCELLED_"
	StatusDone                      FeedProcessingStatus = "_DONE_"
	StatusInProgress                FeedProcessingStatus = "_IN_PROGRESS_"
	StatusInSafetyNet               FeedProcessingStatus = "_IN_SAFETY_NET_"
	StatusSubmitted                 FeedProcessingStatus = "_SUBMITTED_"
	StatusUnconfirmed               FeedProcessingStatus = "_UNCONFIRMED_"
)

// OperationType is the type of operation to be performed on the data in a
// message.
// It is only applicable to product related feeds (Product, Inventory, Price,
// etc.) and is ignored for other feeds.
type OperationType string

// A list of operation types.
const (
	// Update overwrites any existing information with the specified
	// information and erases any unspecified information.
	Update OperationType = "Update"

	// Delete removes all information.
	Delete OperationType = "Delete"

	// PartialUpdate overwrites existing information with the specified
	// information but leaves unspecified information unaffected.
	// It is only valid for Product feeds.
	PartialUpdate OperationType = "PartialUpdate"
)

// MarshalText implements encoding.TextMarshaler.
func (op OperationType) MarshalText() ([]byte, error) {
	return []byte(op), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (op *OperationType) UnmarshalText(text []byte) error {
	switch v := OperationType(text); v {
	case Update, Delete, PartialUpdate:
		*op = v
		return nil
	}
	return fmt.Errorf("feeds: unknown operation type %q", text)
}

package rds

import "time"

// blerAverageWindow is the number of groups averaged to produce the BLER
// a BlockStream attaches to each Group it assembles.
const blerAverageWindow = 12

// blockErrorWindow is the number of most-recent blocks whose error flags
// are summed to decide whether sync has been lost (spec §4.3,
// EN 50067:1998 section C.1.2).
const blockErrorWindow = 50

// syncLossThreshold is the error count, out of the last blockErrorWindow
// blocks, above which sync is declared lost.
const syncLossThreshold = 45

// BlockStream is the block synchronizer and group assembler described in
// spec §3/§4.3: it slides over an incoming bit stream, acquires and
// maintains alignment to the 26-bit block grid, applies burst-error
// correction, and assembles complete four-block groups.
//
// BlockStream is single-owner and not safe for concurrent use; a
// multi-channel caller runs one BlockStream per channel.
type BlockStream struct {
	inputRegister         uint32
	bitcount              int
	numBitsUntilNextBlock int
	expectedOffset        Offset
	isInSync              bool

	blockErrorSum50 *runningSum
	blerAverage     *runningAverage

	syncBuffer syncPulseBuffer

	currentGroup      Group
	readyGroup        Group
	hasGroupReady     bool
	numBitsSinceSyncLost int
}

// NewBlockStream returns a BlockStream ready to ingest bits, starting out
// of sync and expecting offset A.
func NewBlockStream() *BlockStream {
	return &BlockStream{
		numBitsUntilNextBlock: 1,
		expectedOffset:        OffsetA,
		blockErrorSum50:       newRunningSum(blockErrorWindow),
		blerAverage:           newRunningAverage(blerAverageWindow),
	}
}

// PushBit ingests one demodulated bit. It is the synchronizer's only
// entry point and never blocks.
func (s *BlockStream) PushBit(bit bool) {
	s.inputRegister = (s.inputRegister << 1) & blockBitmask
	if bit {
		s.inputRegister |= 1
	}
	s.numBitsUntilNextBlock--
	s.bitcount++

	if s.numBitsUntilNextBlock == 0 {
		s.findBlockInInputRegister()

		if s.isInSync {
			s.numBitsUntilNextBlock = blockLength
		} else {
			s.numBitsUntilNextBlock = 1
		}
	}
}

func (s *BlockStream) findBlockInInputRegister() {
	block := blockFromRaw(s.inputRegister)

	s.acquireSync(block)

	if !s.isInSync {
		return
	}

	// C/C' switch: a block offering C' where we expected C still belongs
	// in slot 3 and carries the PI, so we follow it rather than treat it
	// as an error.
	if s.expectedOffset == OffsetC && block.Offset == OffsetCPrime {
		s.expectedOffset = OffsetCPrime
	}

	block.HadErrors = block.Offset != s.expectedOffset
	s.blockErrorSum50.push(block.HadErrors)

	if block.HadErrors {
		if corrected, ok := correctBurstErrors(block, s.expectedOffset); ok {
			block.Data = uint16(corrected >> checkwordLength)
			block.Offset = s.expectedOffset
		} else {
			s.handleUncorrectableError()
		}
	}

	// Error-free block received, or errors successfully corrected.
	if block.Offset == s.expectedOffset {
		block.IsReceived = true
		s.currentGroup.setBlock(s.expectedOffset.BlockNumber(), block)
	}

	s.expectedOffset = s.expectedOffset.Next()

	if s.expectedOffset == OffsetA {
		s.handleNewlyReceivedGroup()
	}
}

// acquireSync runs the SequenceFound test of spec §4.3 while out of
// sync, transitioning to IN-SYNC as soon as a consistent block grid
// hypothesis is found.
func (s *BlockStream) acquireSync(block Block) {
	if s.isInSync {
		return
	}

	s.numBitsSinceSyncLost++

	if block.Offset == OffsetInvalid {
		return
	}

	s.syncBuffer.push(block.Offset, s.bitcount)

	if s.syncBuffer.sequenceFound() {
		s.isInSync = true
		s.expectedOffset = block.Offset
		s.currentGroup = Group{}
		s.numBitsSinceSyncLost = 0
	}
}

// handleUncorrectableError drops out of sync when too many of the last
// blockErrorWindow blocks were erroneous (EN 50067:1998 section C.1.2).
func (s *BlockStream) handleUncorrectableError() {
	if s.isInSync && s.blockErrorSum50.get() > syncLossThreshold {
		s.isInSync = false
		s.blockErrorSum50.clear()
	}
}

func (s *BlockStream) handleNewlyReceivedGroup() {
	s.blerAverage.push(100 * float64(s.currentGroup.NumErrors()) / 4)
	s.currentGroup.setBLER(s.blerAverage.average())
	s.currentGroup.setTime(time.Now())

	s.readyGroup = s.currentGroup
	s.hasGroupReady = true
	s.currentGroup = Group{}
}

// HasGroupReady is a non-destructive readiness check.
func (s *BlockStream) HasGroupReady() bool {
	return s.hasGroupReady
}

// PopGroup consumes the ready group. After it returns, HasGroupReady is
// false until another group completes.
func (s *BlockStream) PopGroup() Group {
	s.hasGroupReady = false
	return s.readyGroup
}

// FlushCurrentGroup returns a read-only, non-destructive snapshot of the
// group currently being assembled; used at end-of-stream to recover
// whatever blocks were received before the input ran out.
func (s *BlockStream) FlushCurrentGroup() Group {
	return s.currentGroup
}

// GetNumBitsSinceSyncLost is a diagnostic counter: bits ingested while
// out of sync since the last loss (or since start, if sync has never
// been acquired).
func (s *BlockStream) GetNumBitsSinceSyncLost() int {
	return s.numBitsSinceSyncLost
}

// IsInSync reports the synchronizer's current state.
func (s *BlockStream) IsInSync() bool {
	return s.isInSync
}

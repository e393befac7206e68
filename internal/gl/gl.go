// SPDX-License-Identifier: Unlicense OR MIT

// Package gl exposes the raw OpenGL entry points used by glctx.org,
// decoupled from any particular binding library so they can be faked
// in tests.
package gl

type (
	Attrib uint
	Enum   uint
)

const (
	ACTIVE_TEXTURE                          = 0x84e0
	ALIASED_LINE_WIDTH_RANGE                = 0x846e
	ARRAY_BUFFER                            = 0x8892
	BACK                                    = 0x0405
	BYTE                                    = 0x1400
	CLAMP_TO_EDGE                           = 0x812f
	COLOR                                   = 0x1800
	COLOR_ATTACHMENT0                       = 0x8ce0
	COLOR_BUFFER_BIT                        = 0x4000
	COMPILE_STATUS                          = 0x8b81
	CONTEXT_FLAGS                           = 0x821e
	CONTEXT_FLAG_DEBUG_BIT                  = 0x2
	CONTEXT_FLAG_FORWARD_COMPATIBLE_BIT     = 0x1
	CONTEXT_FLAG_NO_ERROR_BIT               = 0x8
	CONTEXT_FLAG_ROBUST_ACCESS_BIT          = 0x4
	COPY_READ_BUFFER                        = 0x8f36
	COPY_WRITE_BUFFER                       = 0x8f37
	CURRENT_PROGRAM                         = 0x8b8d
	DEPTH                                   = 0x1801
	DEPTH_ATTACHMENT                        = 0x8d00
	DEPTH_BUFFER_BIT                        = 0x100
	DEPTH_COMPONENT16                       = 0x81a5
	DEPTH_COMPONENT24                       = 0x81a6
	DRAW_FRAMEBUFFER                        = 0x8ca9
	DYNAMIC_DRAW                            = 0x88e8
	ELEMENT_ARRAY_BUFFER                    = 0x8893
	EXTENSIONS                              = 0x1f03
	FALSE                                   = 0
	FLOAT                                   = 0x1406
	FRAGMENT_SHADER                         = 0x8b30
	FRAMEBUFFER                             = 0x8d40
	FRAMEBUFFER_COMPLETE                    = 0x8cd5
	GUILTY_CONTEXT_RESET                    = 0x8253
	IMPLEMENTATION_COLOR_READ_FORMAT        = 0x8b9b
	IMPLEMENTATION_COLOR_READ_TYPE          = 0x8b9a
	INNOCENT_CONTEXT_RESET                  = 0x8254
	INT                                     = 0x1404
	INTERLEAVED_ATTRIBS                     = 0x8c8c
	INVALID_ENUM                            = 0x500
	INVALID_OPERATION                       = 0x502
	INVALID_VALUE                           = 0x501
	LINEAR                                  = 0x2601
	LINES                                   = 0x1
	LINK_STATUS                             = 0x8b82
	LOSE_CONTEXT_ON_RESET                   = 0x8252
	MAJOR_VERSION                           = 0x821b
	MAX_COLOR_ATTACHMENTS                   = 0x8cdf
	MAX_COMBINED_TEXTURE_IMAGE_UNITS        = 0x8b4d
	MAX_DRAW_BUFFERS                        = 0x8824
	MAX_SAMPLES                             = 0x8d57
	MAX_TEXTURE_MAX_ANISOTROPY              = 0x84ff
	MAX_TEXTURE_SIZE                        = 0xd33
	MAX_TRANSFORM_FEEDBACK_SEPARATE_ATTRIBS = 0x8c8b
	MAX_UNIFORM_BUFFER_BINDINGS             = 0x8a2f
	MAX_VERTEX_ATTRIBS                      = 0x8869
	MINOR_VERSION                           = 0x821c
	NEAREST                                 = 0x2600
	NONE                                    = 0
	NO_ERROR                                = 0
	NO_RESET_NOTIFICATION                   = 0x8261
	NUM_EXTENSIONS                          = 0x821d
	PACK_ALIGNMENT                          = 0xd05
	PACK_ROW_LENGTH                         = 0xd02
	PIXEL_PACK_BUFFER                       = 0x88eb
	PIXEL_UNPACK_BUFFER                     = 0x88ec
	POINTS                                  = 0x0
	READ_FRAMEBUFFER                        = 0x8ca8
	RED                                     = 0x1903
	RENDERBUFFER                            = 0x8d41
	RENDERER                                = 0x1f01
	RESET_NOTIFICATION_STRATEGY             = 0x8256
	RGB                                     = 0x1907
	RGBA                                    = 0x1908
	RGBA8                                   = 0x8058
	SEPARATE_ATTRIBS                        = 0x8c8d
	SHADING_LANGUAGE_VERSION                = 0x8b8c
	SHORT                                   = 0x1402
	SMOOTH_LINE_WIDTH_RANGE                 = 0xb22
	SRGB8_ALPHA8                            = 0x8c43
	STATIC_DRAW                             = 0x88e4
	STENCIL                                 = 0x1802
	STENCIL_ATTACHMENT                      = 0x8d20
	STENCIL_BUFFER_BIT                      = 0x400
	STREAM_DRAW                             = 0x88e0
	TEXTURE0                                = 0x84c0
	TEXTURE_2D                              = 0xde1
	TEXTURE_2D_ARRAY                        = 0x8c1a
	TEXTURE_2D_MULTISAMPLE                  = 0x9100
	TEXTURE_3D                              = 0x806f
	TEXTURE_BUFFER                          = 0x8c2a
	TEXTURE_COMPRESSED_IMAGE_SIZE           = 0x86a0
	TEXTURE_CUBE_MAP                        = 0x8513
	TEXTURE_CUBE_MAP_ARRAY                  = 0x9009
	TEXTURE_CUBE_MAP_POSITIVE_X             = 0x8515
	TEXTURE_MAG_FILTER                      = 0x2800
	TEXTURE_MAX_ANISOTROPY                  = 0x84fe
	TEXTURE_MIN_FILTER                      = 0x2801
	TEXTURE_RECTANGLE                       = 0x84f5
	TEXTURE_WRAP_R                          = 0x8072
	TEXTURE_WRAP_S                          = 0x2802
	TEXTURE_WRAP_T                          = 0x2803
	TRANSFORM_FEEDBACK                      = 0x8e22
	TRANSFORM_FEEDBACK_BUFFER               = 0x8c8e
	TRIANGLES                               = 0x4
	TRIANGLE_STRIP                          = 0x5
	TRUE                                    = 1
	UNIFORM_BUFFER                          = 0x8a11
	UNKNOWN_CONTEXT_RESET                   = 0x8255
	UNPACK_ALIGNMENT                        = 0xcf5
	UNPACK_ROW_LENGTH                       = 0xcf2
	UNSIGNED_BYTE                           = 0x1401
	UNSIGNED_INT                            = 0x1405
	UNSIGNED_SHORT                          = 0x1403
	VENDOR                                  = 0x1f00
	VERSION                                 = 0x1f02
	VERTEX_SHADER                           = 0x8b31
	VIEWPORT                                = 0xba2
)
